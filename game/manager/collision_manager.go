package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies moving the snake's head to pos against the
// pre-move body. When the snake is not growing this tick its tail cell
// counts as free, since the tail vacates it in the same step.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake, growing bool) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if cm.isSelfCollision(pos, snake, growing) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake, growing bool) bool {
	body := snake.Body
	if !growing && len(body) > 0 {
		body = body[:len(body)-1]
	}
	for _, part := range body {
		if pos == part {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is free for food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
