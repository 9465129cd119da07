// Package terminal plays the game in a terminal through tcell.
package terminal

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	snakeStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Each grid cell is two columns wide so the board keeps its aspect ratio.
const cellCols = 2

// CellOrigin returns the terminal column and row of the left half of cell p.
func CellOrigin(p types.Point) (int, int) {
	return 1 + p.X*cellCols, 1 + p.Y
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Draw(c Canvas, s game.State) {
	c.Clear()
	r.drawBorder(c, s.Grid)

	if s.HasFood {
		r.drawCell(c, s.Food, '●', ' ', foodStyle)
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.drawCell(c, s.Snake[i], '█', '█', headStyle)
		} else {
			r.drawCell(c, s.Snake[i], '▓', '▓', snakeStyle)
		}
	}

	r.drawText(c, 0, s.Grid.Height+2, StatusLine(s))
}

// StatusLine is the text shown under the board.
func StatusLine(s game.State) string {
	if s.GameOver {
		return fmt.Sprintf("Game over (%s)  Score: %d  [r] restart  [q] quit", s.Collision, s.Score)
	}
	return fmt.Sprintf("Score: %d  High: %d", s.Score, s.HighScore)
}

func (r *Renderer) drawCell(c Canvas, p types.Point, left, right rune, style tcell.Style) {
	x, y := CellOrigin(p)
	c.SetContent(x, y, left, nil, style)
	c.SetContent(x+1, y, right, nil, style)
}

func (r *Renderer) drawBorder(c Canvas, g types.Grid) {
	w := g.Width*cellCols + 1
	h := g.Height + 1
	for x := 1; x < w; x++ {
		c.SetContent(x, 0, '─', nil, borderStyle)
		c.SetContent(x, h, '─', nil, borderStyle)
	}
	for y := 1; y < h; y++ {
		c.SetContent(0, y, '│', nil, borderStyle)
		c.SetContent(w, y, '│', nil, borderStyle)
	}
	c.SetContent(0, 0, '┌', nil, borderStyle)
	c.SetContent(w, 0, '┐', nil, borderStyle)
	c.SetContent(0, h, '└', nil, borderStyle)
	c.SetContent(w, h, '┘', nil, borderStyle)
}

func (r *Renderer) drawText(c Canvas, x, y int, text string) {
	for _, ch := range text {
		c.SetContent(x, y, ch, nil, textStyle)
		x++
	}
}
