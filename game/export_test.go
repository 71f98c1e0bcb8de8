package game

import (
	"snake-arcade/game/types"
)

// SetFood pins the food cell so tests can steer the snake into it.
// Cells on the snake or off the grid are ignored.
func (e *Engine) SetFood(cell types.Point) {
	if e.snake == nil || !e.cfg.Grid.Contains(cell) || e.snake.Contains(cell) {
		return
	}
	e.foodMgr.SetFood(cell)
}

func (e *Engine) Grid() types.Grid {
	return e.cfg.Grid
}
