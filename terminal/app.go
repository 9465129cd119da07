package terminal

import (
	"context"
	"errors"
	"log"
	"time"

	"grid-snake/driver"
	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/input"

	"github.com/gdamore/tcell/v2"
)

type Action int

const (
	ActionNone Action = iota
	ActionSteer
	ActionRestart
	ActionQuit
)

// KeyAction maps a key press to what the player asked for.
func KeyAction(key tcell.Key, r rune) (Action, types.Direction) {
	switch key {
	case tcell.KeyUp:
		return ActionSteer, types.UP
	case tcell.KeyDown:
		return ActionSteer, types.DOWN
	case tcell.KeyLeft:
		return ActionSteer, types.LEFT
	case tcell.KeyRight:
		return ActionSteer, types.RIGHT
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, types.NONE
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return ActionQuit, types.NONE
		case 'r', 'R':
			return ActionRestart, types.NONE
		}
		if d, ok := input.FromRune(r); ok {
			return ActionSteer, d
		}
	}
	return ActionNone, types.NONE
}

// Run plays engine on screen until the player quits or ctx ends.
func Run(ctx context.Context, screen tcell.Screen, engine *game.Engine, interval time.Duration, logger *log.Logger) error {
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := NewRenderer()
	draw := func(s game.State) {
		renderer.Draw(screen, s)
		screen.Show()
	}
	loop := driver.New(engine, interval, driver.Hooks{
		Frame: draw,
		GameOver: func(s game.State) {
			logger.Printf("game over: %s, score %d", s.Collision, s.Score)
			draw(s)
		},
	})

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				action, dir := KeyAction(ev.Key(), ev.Rune())
				switch action {
				case ActionSteer:
					loop.Steer(dir)
				case ActionRestart:
					loop.Restart()
				case ActionQuit:
					cancel()
					return
				}
			}
		}
	}()

	err := loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
