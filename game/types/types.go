package types

// Point is a cell coordinate in grid space
type Point struct {
	X, Y int
}

// Add returns p moved by delta
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells is the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Game constants
const (
	Cols            = 28  // Grid columns
	Rows            = 20  // Grid rows
	CellSize        = 22  // Pixels per cell
	Margin          = 12  // Border around the board
	HUDHeight       = 24  // Space above the board for the score line
	StatusPadding   = 30  // Extra window height below the board
	StartTickMs     = 140 // Initial tick interval
	MinTickMs       = 70  // Fastest tick interval
	TickStepMs      = 4   // Interval decrease per food eaten
	FoodScore       = 10  // Points per food
	InitialSnakeLen = 3
)

// Config collects the tunables an engine is built with
type Config struct {
	Grid        Grid
	StartTickMs int
	MinTickMs   int
	TickStepMs  int
	FoodScore   int
}

// DefaultConfig returns the fixed arcade configuration
func DefaultConfig() Config {
	return Config{
		Grid:        Grid{Width: Cols, Height: Rows},
		StartTickMs: StartTickMs,
		MinTickMs:   MinTickMs,
		TickStepMs:  TickStepMs,
		FoodScore:   FoodScore,
	}
}

// WindowSize returns the pixel size of a window holding the grid
func (c Config) WindowSize() (width, height int) {
	width = c.Grid.Width*CellSize + Margin*2
	height = c.Grid.Height*CellSize + Margin*2 + StatusPadding
	return width, height
}
