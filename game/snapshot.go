package game

import (
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Snapshot is a frame's worth of state. It shares no memory with the
// engine, so holding one across ticks is safe.
type Snapshot struct {
	Grid           types.Grid
	Snake          []types.Point
	Food           types.Point
	Direction      types.Direction
	Score          int
	HighScore      int
	TickMs         int
	TicksPerSecond int
	Running        bool
	Paused         bool
	GameOver       bool
	State          State
}

// Head is the first snake cell
func (s Snapshot) Head() (types.Point, bool) {
	if len(s.Snake) == 0 {
		return types.Point{}, false
	}
	return s.Snake[0], true
}

// Snapshot copies the state needed to draw one frame
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:           e.cfg.Grid,
		Food:           e.foodMgr.GetFood(),
		Score:          e.stateMgr.GetScore(),
		HighScore:      e.stateMgr.GetHighScore(),
		TickMs:         e.stateMgr.GetTickMs(),
		TicksPerSecond: manager.TicksPerSecond(e.stateMgr.GetTickMs()),
		Running:        e.running,
		Paused:         e.paused,
		GameOver:       e.gameOver,
		State:          e.State(),
	}
	if e.snake != nil {
		snap.Snake = e.snake.Cells()
		snap.Direction = e.snake.Direction
	}
	return snap
}
