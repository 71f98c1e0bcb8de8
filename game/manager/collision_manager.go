package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies moving the snake's head onto pos.
// The whole current body counts, including the tail that would move away.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if snake != nil && snake.Contains(pos) {
		return SelfCollision
	}
	return NoCollision
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
