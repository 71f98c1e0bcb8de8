package types

// Direction is one of the four cardinal moves
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta converts a Direction into a unit displacement
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1} // screen Y grows downwards
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite reports whether d and other are antiparallel on the same axis
func (d Direction) Opposite(other Direction) bool {
	switch d {
	case Up:
		return other == Down
	case Down:
		return other == Up
	case Left:
		return other == Right
	case Right:
		return other == Left
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
