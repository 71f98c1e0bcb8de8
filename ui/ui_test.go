package ui

import (
	"testing"

	"snake-arcade/game"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

type rect struct {
	x, y, w, h, arc int32
	c               Color
}

type text struct {
	s    string
	x, y int32
	size int32
}

type recordingSurface struct {
	w, h   int32
	clears []Color
	lines  int
	rects  []rect
	texts  []text
}

func (r *recordingSurface) Size() (int32, int32) { return r.w, r.h }
func (r *recordingSurface) Clear(c Color)        { r.clears = append(r.clears, c) }
func (r *recordingSurface) Line(x1, y1, x2, y2 int32, c Color) {
	r.lines++
}
func (r *recordingSurface) FillRoundRect(x, y, w, h, arc int32, c Color) {
	r.rects = append(r.rects, rect{x, y, w, h, arc, c})
}
func (r *recordingSurface) Text(s string, x, y, size int32, c Color) {
	r.texts = append(r.texts, text{s, x, y, size})
}
func (r *recordingSurface) MeasureText(s string, size int32) int32 {
	return int32(len(s)) * size / 2
}

func playingSnapshot() game.Snapshot {
	return game.Snapshot{
		Grid: types.Grid{Width: types.Cols, Height: types.Rows},
		Snake: []types.Point{
			{X: 14, Y: 10},
			{X: 13, Y: 10},
			{X: 12, Y: 10},
		},
		Food:           types.Point{X: 3, Y: 4},
		Score:          30,
		HighScore:      120,
		TickMs:         128,
		TicksPerSecond: 7,
		Running:        true,
		State:          game.Playing,
	}
}

func newSurface() *recordingSurface {
	w, h := types.DefaultConfig().WindowSize()
	return &recordingSurface{w: int32(w), h: int32(h)}
}

func TestDrawPlayingFrame(t *testing.T) {
	s := newSurface()
	NewRenderer().Draw(s, playingSnapshot())

	require.Equal(t, []Color{Background}, s.clears)
	require.Equal(t, (types.Cols+1)+(types.Rows+1), s.lines)

	// food, two body segments, head
	require.Len(t, s.rects, 4)
	require.Equal(t, rect{
		x: types.Margin + 3*types.CellSize + 2, y: types.Margin + types.HUDHeight + 4*types.CellSize + 2,
		w: types.CellSize - 4, h: types.CellSize - 4, arc: 8, c: Food,
	}, s.rects[0])
	require.Equal(t, SnakeBody, s.rects[1].c)
	require.Equal(t, SnakeBody, s.rects[2].c)
	head := s.rects[3]
	require.Equal(t, SnakeHead, head.c)
	require.Equal(t, int32(types.Margin+14*types.CellSize+1), head.x)
	require.Equal(t, int32(types.CellSize-2), head.w)

	require.Len(t, s.texts, 1)
	require.Equal(t, "Score: 30   High: 120   Speed: 7 tps", s.texts[0].s)
	require.Equal(t, int32(types.Margin), s.texts[0].x)
}

func TestDrawPauseOverlay(t *testing.T) {
	s := newSurface()
	snap := playingSnapshot()
	snap.Paused = true
	snap.State = game.Paused
	NewRenderer().Draw(s, snap)

	require.Len(t, s.texts, 2)
	overlay := s.texts[1]
	require.Equal(t, PauseText, overlay.s)
	width := s.MeasureText(PauseText, overlay.size)
	require.Equal(t, (s.w-width)/2, overlay.x)

	backdrop := s.rects[len(s.rects)-1]
	require.Equal(t, Backdrop, backdrop.c)
	require.Equal(t, uint8(120), backdrop.c.A)
	require.Equal(t, overlay.x-16, backdrop.x)
}

func TestDrawGameOverOverlay(t *testing.T) {
	s := newSurface()
	snap := playingSnapshot()
	snap.Running = false
	snap.GameOver = true
	snap.State = game.GameOver
	NewRenderer().Draw(s, snap)

	require.Equal(t, GameOverText, s.texts[len(s.texts)-1].s)
}

func TestDrawBeforeStart(t *testing.T) {
	s := newSurface()
	NewRenderer().Draw(s, game.Snapshot{Grid: types.Grid{Width: types.Cols, Height: types.Rows}})
	require.Empty(t, s.rects)
	require.Len(t, s.texts, 1)
}

type recordingController struct {
	dirs     []types.Direction
	pauses   int
	restarts int
}

func (c *recordingController) SetPendingDirection(d types.Direction) { c.dirs = append(c.dirs, d) }
func (c *recordingController) TogglePause()                          { c.pauses++ }
func (c *recordingController) StartNewGame()                         { c.restarts++ }

func TestActionForKey(t *testing.T) {
	require.Equal(t, MoveUp, ActionForKey(rl.KeyW))
	require.Equal(t, MoveUp, ActionForKey(rl.KeyUp))
	require.Equal(t, MoveDown, ActionForKey(rl.KeyS))
	require.Equal(t, MoveDown, ActionForKey(rl.KeyDown))
	require.Equal(t, MoveLeft, ActionForKey(rl.KeyA))
	require.Equal(t, MoveLeft, ActionForKey(rl.KeyLeft))
	require.Equal(t, MoveRight, ActionForKey(rl.KeyD))
	require.Equal(t, MoveRight, ActionForKey(rl.KeyRight))
	require.Equal(t, TogglePause, ActionForKey(rl.KeySpace))
	require.Equal(t, Restart, ActionForKey(rl.KeyR))
	require.Equal(t, None, ActionForKey(rl.KeyQ))
	require.Equal(t, None, ActionForKey(rl.KeyEnter))
}

func TestDispatch(t *testing.T) {
	c := &recordingController{}
	for _, a := range []Action{MoveUp, MoveLeft, None, MoveDown, MoveRight, TogglePause, Restart} {
		Dispatch(c, a)
	}
	require.Equal(t, []types.Direction{types.Up, types.Left, types.Down, types.Right}, c.dirs)
	require.Equal(t, 1, c.pauses)
	require.Equal(t, 1, c.restarts)
}

func TestDispatchDrivesEngine(t *testing.T) {
	e := game.NewEngine(types.DefaultConfig(), &nopClock{})
	e.StartNewGame()
	Dispatch(e, ActionForKey(rl.KeySpace))
	require.Equal(t, game.Paused, e.State())
	Dispatch(e, ActionForKey(rl.KeyR))
	require.Equal(t, game.Playing, e.State())
}

type nopClock struct{}

func (nopClock) Rearm(int) {}
func (nopClock) Stop()     {}
