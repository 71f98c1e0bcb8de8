package manager

import (
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrGridFull is returned when no free cell is left for food
var ErrGridFull = errors.New("no free cell left for food")

// Intner is the slice of a random source food placement needs
type Intner interface {
	Intn(n int) int
}

type FoodManager struct {
	grid types.Grid
	rng  Intner
	food types.Point
}

// NewFoodManager places food with rng; a nil rng uses a time-seeded source
func NewFoodManager(grid types.Grid, rng Intner) *FoodManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(seed()))
	}
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Respawn moves the food to a free cell
func (fm *FoodManager) Respawn(snake *entity.Snake) error {
	food, err := GenerateFood(fm.rng, fm.grid, snake)
	if err != nil {
		return err
	}
	fm.food = food
	return nil
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// SetFood pins the food cell; callers must keep it off the snake
func (fm *FoodManager) SetFood(food types.Point) {
	fm.food = food
}

// GenerateFood picks a uniformly random cell not covered by snake,
// resampling until one is found.
func GenerateFood(rng Intner, grid types.Grid, snake *entity.Snake) (types.Point, error) {
	if snake != nil && snake.Len() >= grid.Cells() {
		return types.Point{}, ErrGridFull
	}
	for {
		food := types.Point{
			X: rng.Intn(grid.Width),
			Y: rng.Intn(grid.Height),
		}
		if snake == nil || !snake.Contains(food) {
			return food, nil
		}
	}
}

func seed() uint64 {
	return uint64(time.Now().UnixNano())
}
