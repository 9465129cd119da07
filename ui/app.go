package ui

import (
	"log"
	"time"

	"grid-snake/driver"
	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/input"
	"grid-snake/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens a window and plays engine until it is closed.
func Run(engine *game.Engine, width, height int, interval time.Duration, logger *log.Logger) {
	rl.InitWindow(int32(width), int32(height), "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := NewRenderer()
	loop := driver.New(engine, interval, driver.Hooks{
		GameOver: func(s game.State) {
			logger.Printf("game over: %s, score %d", s.Collision, s.Score)
		},
	})

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if loop.Stopped() {
			if quit := handleDialog(renderer.Dialog(), loop); quit {
				break
			}
		} else {
			handleSteering(loop)
		}

		loop.Step(time.Now())
		renderer.Draw(engine.Snapshot())
	}
}

var arrowKeys = map[int32]types.Direction{
	rl.KeyUp:    types.UP,
	rl.KeyDown:  types.DOWN,
	rl.KeyLeft:  types.LEFT,
	rl.KeyRight: types.RIGHT,
	rl.KeyW:     types.UP,
	rl.KeyS:     types.DOWN,
	rl.KeyA:     types.LEFT,
	rl.KeyD:     types.RIGHT,
}

func handleSteering(loop *driver.Loop) {
	for key, dir := range arrowKeys {
		if rl.IsKeyPressed(key) {
			loop.Steer(dir)
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
		if dir, ok := input.FromTouch(pos.X, pos.Y, w, h); ok {
			loop.Steer(dir)
		}
	}
}

// handleDialog restarts or quits from the game-over dialog
func handleDialog(d layout.Dialog, loop *driver.Loop) bool {
	if rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyEnter) {
		loop.Restart()
		return false
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		switch {
		case d.Restart.Contains(pos.X, pos.Y):
			loop.Restart()
		case d.Quit.Contains(pos.X, pos.Y):
			return true
		}
	}
	return false
}
