package ui

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

var (
	Background = Color{R: 22, G: 22, B: 26, A: 255}
	GridLine   = Color{R: 40, G: 40, B: 48, A: 255}
	SnakeHead  = Color{R: 0x48, G: 0xC7, B: 0x7E, A: 255}
	SnakeBody  = Color{R: 0x2B, G: 0xA8, B: 0x65, A: 255}
	Food       = Color{R: 0xFF, G: 0x5A, B: 0x54, A: 255}
	TextColor  = Color{R: 230, G: 230, B: 235, A: 255}
	Backdrop   = Color{R: 0, G: 0, B: 0, A: 120}
)

const (
	hudFontSize     = 16
	overlayFontSize = 28

	PauseText    = "PAUSE (Space)"
	GameOverText = "GAME OVER  -  R = Restart"
)

type Renderer struct {
	cellSize int32
	offsetX  int32
	offsetY  int32
}

func NewRenderer() *Renderer {
	return &Renderer{
		cellSize: types.CellSize,
		offsetX:  types.Margin,
		offsetY:  types.Margin + types.HUDHeight,
	}
}

// HUDLine formats the score line shown above the board
func HUDLine(snap game.Snapshot) string {
	return fmt.Sprintf("Score: %d   High: %d   Speed: %d tps", snap.Score, snap.HighScore, snap.TicksPerSecond)
}

// OverlayText is the modal message for the snapshot, empty while playing
func OverlayText(snap game.Snapshot) string {
	switch {
	case snap.Paused:
		return PauseText
	case snap.GameOver:
		return GameOverText
	default:
		return ""
	}
}

// Draw paints one frame of snap onto s
func (r *Renderer) Draw(s Surface, snap game.Snapshot) {
	s.Clear(Background)

	r.drawGrid(s, snap.Grid)
	r.drawFood(s, snap)
	r.drawSnake(s, snap.Snake)

	s.Text(HUDLine(snap), types.Margin, types.Margin, hudFontSize, TextColor)

	if text := OverlayText(snap); text != "" {
		r.drawCenterText(s, text)
	}
}

func (r *Renderer) drawGrid(s Surface, g types.Grid) {
	width := int32(g.Width) * r.cellSize
	height := int32(g.Height) * r.cellSize
	for x := int32(0); x <= int32(g.Width); x++ {
		px := r.offsetX + x*r.cellSize
		s.Line(px, r.offsetY, px, r.offsetY+height, GridLine)
	}
	for y := int32(0); y <= int32(g.Height); y++ {
		py := r.offsetY + y*r.cellSize
		s.Line(r.offsetX, py, r.offsetX+width, py, GridLine)
	}
}

func (r *Renderer) drawFood(s Surface, snap game.Snapshot) {
	if !snap.Running && !snap.GameOver {
		return
	}
	fx, fy := r.cellOrigin(snap.Food)
	s.FillRoundRect(fx+2, fy+2, r.cellSize-4, r.cellSize-4, 8, Food)
}

func (r *Renderer) drawSnake(s Surface, body []types.Point) {
	if len(body) == 0 {
		return
	}
	for _, p := range body[1:] {
		x, y := r.cellOrigin(p)
		s.FillRoundRect(x+2, y+2, r.cellSize-4, r.cellSize-4, 10, SnakeBody)
	}
	// head last so it sits on top, slightly larger than the body
	hx, hy := r.cellOrigin(body[0])
	s.FillRoundRect(hx+1, hy+1, r.cellSize-2, r.cellSize-2, 12, SnakeHead)
}

func (r *Renderer) drawCenterText(s Surface, text string) {
	w, h := s.Size()
	textWidth := s.MeasureText(text, overlayFontSize)
	tx := (w - textWidth) / 2
	ty := (h - overlayFontSize) / 2

	s.FillRoundRect(tx-16, ty-10, textWidth+32, overlayFontSize+20, 16, Backdrop)
	s.Text(text, tx, ty, overlayFontSize, TextColor)
}

func (r *Renderer) cellOrigin(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}
