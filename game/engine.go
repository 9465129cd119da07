package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/google/uuid"
)

// ErrInvalidDimensions is returned when the board is not at least 1x1.
var ErrInvalidDimensions = errors.New("board dimensions must be positive")

// State is a read-only copy of everything a renderer needs.
type State struct {
	ID        string
	Grid      types.Grid
	Snake     []types.Point
	Food      types.Point
	HasFood   bool
	Heading   types.Direction
	Score     int
	HighScore int
	Steps     int
	GameOver  bool
	Collision types.CollisionType
}

// Engine owns the state of one game. It holds no locks; SetDirection
// and Update must be called from the same goroutine.
type Engine struct {
	id           string
	grid         types.Grid
	snake        *entity.Snake
	food         types.Point
	hasFood      bool
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	state        *manager.StateManager
	logger       *log.Logger
}

type options struct {
	seed   uint64
	seeded bool
	logger *log.Logger
}

// Option configures an Engine at construction.
type Option func(*options)

// WithSeed makes food placement reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithLogger sets where game-over and reset events are logged.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func NewEngine(width, height int, opts ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new engine %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = uint64(time.Now().UnixNano())
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}

	grid := types.Grid{
		Width:  width,
		Height: height,
	}
	collisionMgr := manager.NewCollisionManager(grid)

	e := &Engine{
		grid:         grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, o.seed),
		state:        manager.NewStateManager(),
		logger:       o.logger,
	}
	e.init()
	return e, nil
}

// init lays out the starting snake and food. Shared by construction and Reset.
func (e *Engine) init() {
	e.id = uuid.New().String()
	e.state.Reset()

	head := types.Point{X: e.grid.Width / 2, Y: e.grid.Height / 2}
	e.snake = entity.NewSnake(head, min(types.InitialLength, head.X+1), types.RIGHT)

	e.placeFood()
}

func (e *Engine) placeFood() {
	food, ok := e.foodMgr.GenerateFood(e.snake)
	e.food, e.hasFood = food, ok
	if !ok {
		e.end(types.BoardFull)
	}
}

func (e *Engine) end(reason types.CollisionType) {
	e.state.End(reason)
	e.logger.Printf("game %s over: %s, score %d after %d steps", e.id, reason, e.state.GetScore(), e.state.GetSteps())
}

// SetDirection records d for the next tick. The last call before a tick wins.
func (e *Engine) SetDirection(d types.Direction) {
	if e.state.IsGameOver() {
		return
	}
	e.snake.SetDirection(d)
}

// Update advances the game by one tick. It is a no-op once the game is over.
func (e *Engine) Update() {
	if e.state.IsGameOver() {
		return
	}

	dir := e.snake.CommitDirection()
	newHead := e.snake.GetHead().Add(dir)
	growing := e.hasFood && e.collisionMgr.IsFoodCollision(newHead, e.food)

	if collision := e.collisionMgr.CheckCollision(newHead, e.snake, growing); collision != types.NoCollision {
		e.end(collision)
		return
	}

	e.snake.Move(newHead)
	e.state.Step()

	if growing {
		e.state.AddScore()
		e.placeFood()
	} else {
		e.snake.RemoveTail()
	}
}

func (e *Engine) IsGameOver() bool {
	return e.state.IsGameOver()
}

// Reset starts a new game on the same board.
func (e *Engine) Reset() {
	prev := e.id
	e.init()
	e.logger.Printf("game %s reset as %s", prev, e.id)
}

func (e *Engine) ID() string { return e.id }
func (e *Engine) Width() int { return e.grid.Width }
func (e *Engine) Height() int { return e.grid.Height }
func (e *Engine) Grid() types.Grid { return e.grid }
func (e *Engine) Food() types.Point { return e.food }
func (e *Engine) HasFood() bool { return e.hasFood }
func (e *Engine) Heading() types.Direction { return e.snake.Direction }
func (e *Engine) Pending() types.Direction { return e.snake.Pending }
func (e *Engine) Score() int { return e.state.GetScore() }
func (e *Engine) Steps() int { return e.state.GetSteps() }
func (e *Engine) CollisionType() types.CollisionType { return e.state.GetCollision() }

// Snake returns a copy of the segments, head first.
func (e *Engine) Snake() []types.Point {
	return e.snake.Segments()
}

func (e *Engine) Snapshot() State {
	return State{
		ID:        e.id,
		Grid:      e.grid,
		Snake:     e.snake.Segments(),
		Food:      e.food,
		HasFood:   e.hasFood,
		Heading:   e.snake.Direction,
		Score:     e.state.GetScore(),
		HighScore: e.state.GetHighScore(),
		Steps:     e.state.GetSteps(),
		GameOver:  e.state.IsGameOver(),
		Collision: e.state.GetCollision(),
	}
}
