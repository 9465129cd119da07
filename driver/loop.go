// Package driver paces an Engine and serializes player input with ticks.
package driver

import (
	"context"
	"time"

	"grid-snake/game"
	"grid-snake/game/types"
)

// DefaultInterval is the delay between two ticks.
const DefaultInterval = 230 * time.Millisecond

// Hooks are called from the goroutine driving the engine after each tick.
type Hooks struct {
	Frame    func(game.State)
	GameOver func(game.State)
}

// Loop owns the only goroutine allowed to touch its engine. Steer and
// Restart may be called from anywhere; their requests are applied by the
// loop between ticks.
type Loop struct {
	engine   *game.Engine
	interval time.Duration
	hooks    Hooks

	steerChan   chan types.Direction
	restartChan chan struct{}

	lastTick time.Time
	stopped  bool
}

func New(engine *game.Engine, interval time.Duration, hooks Hooks) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		engine:      engine,
		interval:    interval,
		hooks:       hooks,
		steerChan:   make(chan types.Direction, 1),
		restartChan: make(chan struct{}, 1),
	}
}

// Steer requests a direction for the next tick. A newer request
// replaces one that has not been applied yet.
func (l *Loop) Steer(d types.Direction) {
	for {
		select {
		case l.steerChan <- d:
			return
		default:
		}
		select {
		case <-l.steerChan:
		default:
		}
	}
}

// Restart requests a new game. Ticking resumes after the reset.
func (l *Loop) Restart() {
	select {
	case l.restartChan <- struct{}{}:
	default:
	}
}

// Stopped reports whether ticking is paused on a finished game.
func (l *Loop) Stopped() bool {
	return l.stopped
}

// Run drives the engine until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.emit(l.engine.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d := <-l.steerChan:
			l.engine.SetDirection(d)
		case <-l.restartChan:
			l.reset()
		case <-ticker.C:
			l.tick()
		}
	}
}

// Step is for frontends that own their frame loop. It applies pending
// requests and ticks once when an interval has passed since the last
// tick. It reports whether a tick ran.
func (l *Loop) Step(now time.Time) bool {
	select {
	case <-l.restartChan:
		l.reset()
		l.lastTick = now
	default:
	}
	if now.Sub(l.lastTick) < l.interval {
		return false
	}
	l.lastTick = now
	return l.tick()
}

func (l *Loop) reset() {
	l.engine.Reset()
	l.stopped = false
	select {
	case <-l.steerChan:
	default:
	}
	l.emit(l.engine.Snapshot())
}

func (l *Loop) drainSteer() {
	select {
	case d := <-l.steerChan:
		l.engine.SetDirection(d)
	default:
	}
}

func (l *Loop) tick() bool {
	if l.stopped {
		return false
	}
	l.drainSteer()
	l.engine.Update()
	l.emit(l.engine.Snapshot())
	return true
}

func (l *Loop) emit(s game.State) {
	if s.GameOver {
		l.stopped = true
		if l.hooks.GameOver != nil {
			l.hooks.GameOver(s)
		}
		return
	}
	if l.hooks.Frame != nil {
		l.hooks.Frame(s)
	}
}
