// Package term plays the game inside a terminal using termbox.
package term

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/clock"
	"snake-arcade/game/types"
	"snake-arcade/ui"

	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	headColor    = termbox.ColorGreen | termbox.AttrBold
	bodyColor    = termbox.ColorGreen
	foodColor    = termbox.ColorRed
	cellWidth    = 2 // terminal columns per grid cell
)

// Keys decodes a termbox key event. quit is set for keys that leave the game.
func Keys(ev termbox.Event) (action ui.Action, quit bool) {
	if ev.Type != termbox.EventKey {
		return ui.None, false
	}
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return ui.None, true
	case termbox.KeyArrowUp:
		return ui.MoveUp, false
	case termbox.KeyArrowDown:
		return ui.MoveDown, false
	case termbox.KeyArrowLeft:
		return ui.MoveLeft, false
	case termbox.KeyArrowRight:
		return ui.MoveRight, false
	case termbox.KeySpace:
		return ui.TogglePause, false
	}
	switch ev.Ch {
	case 'w', 'W':
		return ui.MoveUp, false
	case 's', 'S':
		return ui.MoveDown, false
	case 'a', 'A':
		return ui.MoveLeft, false
	case 'd', 'D':
		return ui.MoveRight, false
	case ' ':
		return ui.TogglePause, false
	case 'r', 'R':
		return ui.Restart, false
	case 'q', 'Q':
		return ui.None, true
	}
	return ui.None, false
}

// Run plays until the player quits. The engine is only touched from the
// calling goroutine.
func Run(cfg types.Config, opts ...game.Option) error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to initialise terminal")
	}
	defer termbox.Close()

	clk := clock.NewTimerClock()
	defer clk.Close()

	engine := game.NewEngine(cfg, clk, opts...)
	dirty := true
	engine.OnChange(func() { dirty = true })
	engine.StartNewGame()

	events := setupEventQueue()
	for {
		if dirty {
			if err := Render(engine.Snapshot()); err != nil {
				return err
			}
			dirty = false
		}

		select {
		case ev := <-events:
			switch ev.Type {
			case termbox.EventError:
				return errors.Wrap(ev.Err, "terminal event")
			case termbox.EventResize:
				dirty = true
			case termbox.EventKey:
				action, quit := Keys(ev)
				if quit {
					return nil
				}
				ui.Dispatch(engine, action)
				dirty = true
			}
		case gen := <-clk.C():
			if clk.Fire(gen) {
				engine.Tick()
			}
		}
	}
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}

// layout places a grid inside a terminal of a given size. The board frame
// occupies rows top and bottom; the HUD sits two rows above the frame.
type layout struct {
	left, top, bottom, width int
}

func newLayout(termWidth, termHeight int, grid types.Grid) layout {
	l := layout{width: grid.Width * cellWidth}
	l.left = (termWidth - l.width) / 2
	l.top = (termHeight-grid.Height)/2 - 1
	if l.left < 1 {
		l.left = 1
	}
	if l.top < 2 {
		l.top = 2
	}
	l.bottom = l.top + grid.Height + 1
	return l
}

// cell is the terminal position of the first column of grid cell p
func (l layout) cell(p types.Point) (x, y int) {
	return l.left + p.X*cellWidth, l.top + 1 + p.Y
}

// hud is where the score line starts
func (l layout) hud() (x, y int) {
	return l.left - 1, l.top - 2
}

// overlay is where a centred message of the given text starts
func (l layout) overlay(text string, grid types.Grid) (x, y int) {
	return l.left + (l.width-runewidth.StringWidth(text))/2, l.top + grid.Height/2
}

// Render draws snap centred in the terminal
func Render(snap game.Snapshot) error {
	if err := termbox.Clear(defaultColor, bgColor); err != nil {
		return errors.Wrap(err, "clear terminal")
	}

	w, h := termbox.Size()
	l := newLayout(w, h, snap.Grid)

	hx, hy := l.hud()
	tbprint(hx, hy, defaultColor, bgColor, ui.HUDLine(snap))
	renderBoard(l.left, l.top, l.bottom, l.width)

	if snap.Running || snap.GameOver {
		setCell(l, snap.Food, '●', foodColor)
	}
	if head, ok := snap.Head(); ok {
		for _, p := range snap.Snake[1:] {
			setCell(l, p, '█', bodyColor)
		}
		setCell(l, head, '▓', headColor)
	}

	if text := ui.OverlayText(snap); text != "" {
		text = fmt.Sprintf(" %s ", text)
		tx, ty := l.overlay(text, snap.Grid)
		tbprint(tx, ty, termbox.ColorBlack, termbox.ColorWhite, text)
	}

	return errors.Wrap(termbox.Flush(), "flush terminal")
}

func setCell(l layout, p types.Point, ch rune, fg termbox.Attribute) {
	x, y := l.cell(p)
	for i := 0; i < cellWidth; i++ {
		termbox.SetCell(x+i, y, ch, fg, bgColor)
	}
}

func renderBoard(left, top, bottom, width int) {
	for i := top; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─'})
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
