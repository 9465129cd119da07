package manager

import (
	"grid-snake/game/types"
)

// StateManager keeps the per-game counters and the terminal flag.
// The session high score survives Reset, nothing is written to disk.
type StateManager struct {
	score     int
	steps     int
	gameOver  bool
	collision types.CollisionType
	highScore int
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

func (sm *StateManager) Reset() {
	sm.score = 0
	sm.steps = 0
	sm.gameOver = false
	sm.collision = types.NoCollision
}

func (sm *StateManager) Step() {
	sm.steps++
}

func (sm *StateManager) AddScore() {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// End marks the game over. Only the first reason is kept.
func (sm *StateManager) End(reason types.CollisionType) {
	if sm.gameOver {
		return
	}
	sm.gameOver = true
	sm.collision = reason
}

func (sm *StateManager) IsGameOver() bool {
	return sm.gameOver
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetSteps() int {
	return sm.steps
}

func (sm *StateManager) GetCollision() types.CollisionType {
	return sm.collision
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}
