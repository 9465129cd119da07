package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	free         []types.Point
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
		free:         make([]types.Point, 0, grid.Cells()),
	}
}

// GenerateFood picks a cell uniformly among those the snake does not
// occupy. It reports false when the snake fills the whole grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	if snake.Len() >= fm.grid.Cells() {
		return types.Point{}, false
	}

	// Rejection sampling is cheap while the board is mostly empty.
	if snake.Len()*2 < fm.grid.Cells() {
		for tries := 0; tries < 32; tries++ {
			food := types.Point{
				X: fm.rng.Intn(fm.grid.Width),
				Y: fm.rng.Intn(fm.grid.Height),
			}
			if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
				return food, true
			}
		}
	}

	fm.free = fm.free[:0]
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				fm.free = append(fm.free, p)
			}
		}
	}
	if len(fm.free) == 0 {
		return types.Point{}, false
	}
	return fm.free[fm.rng.Intn(len(fm.free))], true
}
