package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Color is an RGBA color
type Color struct {
	R, G, B, A uint8
}

// Surface is the set of drawing primitives the renderer needs
type Surface interface {
	Size() (width, height int32)
	Clear(c Color)
	Line(x1, y1, x2, y2 int32, c Color)
	// FillRoundRect fills a rectangle whose corners have radius arc/2
	FillRoundRect(x, y, w, h, arc int32, c Color)
	Text(s string, x, y, size int32, c Color)
	MeasureText(s string, size int32) int32
}

// RaylibSurface draws into the current raylib window. Calls must happen
// between rl.BeginDrawing and rl.EndDrawing.
type RaylibSurface struct{}

func NewRaylibSurface() *RaylibSurface {
	return &RaylibSurface{}
}

func (RaylibSurface) Size() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

func (RaylibSurface) Clear(c Color) {
	rl.ClearBackground(toRaylib(c))
}

func (RaylibSurface) Line(x1, y1, x2, y2 int32, c Color) {
	rl.DrawLine(x1, y1, x2, y2, toRaylib(c))
}

func (RaylibSurface) FillRoundRect(x, y, w, h, arc int32, c Color) {
	rec := rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
	shorter := w
	if h < shorter {
		shorter = h
	}
	roundness := float32(0)
	if shorter > 0 {
		// raylib roundness is the corner diameter relative to the shorter side
		roundness = float32(arc) / float32(shorter)
		if roundness > 1 {
			roundness = 1
		}
	}
	rl.DrawRectangleRounded(rec, roundness, 6, toRaylib(c))
}

func (RaylibSurface) Text(s string, x, y, size int32, c Color) {
	rl.DrawText(s, x, y, size, toRaylib(c))
}

func (RaylibSurface) MeasureText(s string, size int32) int32 {
	return rl.MeasureText(s, size)
}

func toRaylib(c Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
