package ui

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	snakeColor = rl.Black
	headColor  = rl.DarkGray
	foodColor  = rl.Red
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	board        layout.Board
	dialog       layout.Dialog
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.dialog = layout.NewDialog(r.screenWidth, r.screenHeight)
}

// Dialog returns the game-over dialog geometry of the last frame
func (r *Renderer) Dialog() layout.Dialog {
	return r.dialog
}

func (r *Renderer) Draw(s game.State) {
	r.UpdateDimensions()
	r.board = layout.NewBoard(s.Grid, r.screenWidth, r.screenHeight)

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.RayWhite)

	for i, p := range s.Snake {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		cell := r.board.Cell(p)
		rl.DrawRectangle(cell.X, cell.Y, cell.W, cell.H, color)
	}
	if len(s.Snake) > 0 {
		r.drawHeading(r.board.Cell(s.Snake[0]), s.Heading)
	}

	if s.HasFood {
		cell := r.board.Cell(s.Food)
		rl.DrawRectangle(cell.X, cell.Y, cell.W, cell.H, foodColor)
	}

	fontSize := r.screenHeight / 40
	rl.DrawText(fmt.Sprintf("Score: %d  High: %d", s.Score, s.HighScore), 10, 10, fontSize, rl.Gray)

	if s.GameOver {
		r.drawGameOver(s)
	}
}

// drawHeading draws a triangle on the head pointing where the snake goes
func (r *Renderer) drawHeading(head layout.Rect, dir types.Direction) {
	x, y := float32(head.X), float32(head.Y)
	w, h := float32(head.W), float32(head.H)
	var a, b, c rl.Vector2
	switch dir {
	case types.RIGHT:
		a, b, c = rl.Vector2{X: x + w, Y: y + h/2}, rl.Vector2{X: x + w/2, Y: y}, rl.Vector2{X: x + w/2, Y: y + h}
	case types.LEFT:
		a, b, c = rl.Vector2{X: x, Y: y + h/2}, rl.Vector2{X: x + w/2, Y: y + h}, rl.Vector2{X: x + w/2, Y: y}
	case types.DOWN:
		a, b, c = rl.Vector2{X: x + w/2, Y: y + h}, rl.Vector2{X: x + w, Y: y + h/2}, rl.Vector2{X: x, Y: y + h/2}
	default:
		a, b, c = rl.Vector2{X: x + w/2, Y: y}, rl.Vector2{X: x, Y: y + h/2}, rl.Vector2{X: x + w, Y: y + h/2}
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawGameOver(s game.State) {
	d := r.dialog
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Fade(rl.Black, 0.4))
	rl.DrawRectangle(d.Box.X, d.Box.Y, d.Box.W, d.Box.H, rl.RayWhite)
	rl.DrawRectangleLines(d.Box.X, d.Box.Y, d.Box.W, d.Box.H, rl.DarkGray)

	titleSize := d.Box.H / 6
	textSize := d.Box.H / 10
	rl.DrawText("Game over", d.Box.X+titleSize/2, d.Box.Y+titleSize/2, titleSize, rl.Black)
	rl.DrawText(gameOverMessage(s), d.Box.X+titleSize/2, d.Box.Y+titleSize*2, textSize, rl.DarkGray)

	r.drawButton(d.Restart, "Again")
	r.drawButton(d.Quit, "Quit")
}

func (r *Renderer) drawButton(b layout.Rect, label string) {
	size := b.H / 2
	rl.DrawRectangle(b.X, b.Y, b.W, b.H, rl.LightGray)
	rl.DrawRectangleLines(b.X, b.Y, b.W, b.H, rl.Gray)
	tw := rl.MeasureText(label, size)
	rl.DrawText(label, b.X+(b.W-tw)/2, b.Y+(b.H-size)/2, size, rl.Black)
}

func gameOverMessage(s game.State) string {
	switch s.Collision {
	case types.WallCollision:
		return fmt.Sprintf("Hit the wall. Score: %d", s.Score)
	case types.SelfCollision:
		return fmt.Sprintf("Bit your own tail. Score: %d", s.Score)
	default:
		return fmt.Sprintf("No room left. Score: %d", s.Score)
	}
}
