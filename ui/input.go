package ui

import (
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Action is a player command decoded from a key press
type Action int

const (
	None Action = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	TogglePause
	Restart
)

func (a Action) String() string {
	switch a {
	case MoveUp:
		return "move up"
	case MoveDown:
		return "move down"
	case MoveLeft:
		return "move left"
	case MoveRight:
		return "move right"
	case TogglePause:
		return "toggle pause"
	case Restart:
		return "restart"
	default:
		return "none"
	}
}

// Controller is the engine surface input is forwarded to
type Controller interface {
	SetPendingDirection(d types.Direction)
	TogglePause()
	StartNewGame()
}

// KeyMap translates raylib key codes into actions
var KeyMap = map[int32]Action{
	rl.KeyW:     MoveUp,
	rl.KeyUp:    MoveUp,
	rl.KeyS:     MoveDown,
	rl.KeyDown:  MoveDown,
	rl.KeyA:     MoveLeft,
	rl.KeyLeft:  MoveLeft,
	rl.KeyD:     MoveRight,
	rl.KeyRight: MoveRight,
	rl.KeySpace: TogglePause,
	rl.KeyR:     Restart,
}

// ActionForKey returns None for keys without a binding
func ActionForKey(key int32) Action {
	if a, ok := KeyMap[key]; ok {
		return a
	}
	return None
}

// Dispatch forwards a to c. None is ignored.
func Dispatch(c Controller, a Action) {
	switch a {
	case MoveUp:
		c.SetPendingDirection(types.Up)
	case MoveDown:
		c.SetPendingDirection(types.Down)
	case MoveLeft:
		c.SetPendingDirection(types.Left)
	case MoveRight:
		c.SetPendingDirection(types.Right)
	case TogglePause:
		c.TogglePause()
	case Restart:
		c.StartNewGame()
	}
}

// PollKeys drains raylib's key queue for this frame and dispatches each press
func PollKeys(c Controller) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		Dispatch(c, ActionForKey(key))
	}
}
