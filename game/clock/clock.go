// Package clock provides the periodic tick sources that drive the engine.
//
// Every implementation has stop-then-restart semantics: Rearm discards any
// pending deadline and schedules a fresh one a full interval away, and a
// stopped clock never fires until it is rearmed.
package clock

import (
	"time"
)

// Clock is the tick source the engine arms and stops
type Clock interface {
	Rearm(intervalMs int)
	Stop()
}

// FrameClock is polled from a render loop once per frame
type FrameClock struct {
	now      func() time.Time
	interval time.Duration
	deadline time.Time
	running  bool
}

// NewFrameClock returns a stopped clock; a nil now uses time.Now
func NewFrameClock(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now}
}

func (c *FrameClock) Rearm(intervalMs int) {
	if intervalMs < 1 {
		intervalMs = 1
	}
	c.interval = time.Duration(intervalMs) * time.Millisecond
	c.deadline = c.now().Add(c.interval)
	c.running = true
}

func (c *FrameClock) Stop() {
	c.running = false
}

func (c *FrameClock) Running() bool {
	return c.running
}

// Due reports whether a tick should fire now. Deadlines advance from the
// previous deadline so frame granularity does not stretch the period. At
// most one tick fires per poll; after a stall the schedule restarts from
// now instead of queueing a burst.
func (c *FrameClock) Due() bool {
	if !c.running {
		return false
	}
	now := c.now()
	if now.Before(c.deadline) {
		return false
	}
	c.deadline = c.deadline.Add(c.interval)
	if !c.deadline.After(now) {
		c.deadline = now.Add(c.interval)
	}
	return true
}

// TimerClock delivers ticks on a channel for select-based loops.
// Each arming gets a generation number; ticks from an older arming are
// rejected by Fire, so nothing stale leaks past Stop or Rearm.
type TimerClock struct {
	timer    *time.Timer
	interval time.Duration
	gen      uint64
	armed    bool
	c        chan uint64
	done     chan struct{}
}

// NewTimerClock returns a stopped clock
func NewTimerClock() *TimerClock {
	return &TimerClock{
		c:    make(chan uint64, 1),
		done: make(chan struct{}),
	}
}

// C is the channel tick generations arrive on
func (c *TimerClock) C() <-chan uint64 {
	return c.c
}

func (c *TimerClock) Rearm(intervalMs int) {
	c.Stop()
	if intervalMs < 1 {
		intervalMs = 1
	}
	c.interval = time.Duration(intervalMs) * time.Millisecond
	c.armed = true
	c.schedule()
}

func (c *TimerClock) Stop() {
	c.armed = false
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Close stops the clock and releases any callback still waiting to deliver
func (c *TimerClock) Close() {
	c.Stop()
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}

func (c *TimerClock) Running() bool {
	return c.armed
}

// Fire validates a generation received from C and schedules the next tick.
// It reports whether the tick belongs to the current arming.
func (c *TimerClock) Fire(gen uint64) bool {
	if !c.armed || gen != c.gen {
		return false
	}
	c.schedule()
	return true
}

func (c *TimerClock) schedule() {
	gen := c.gen
	out, done := c.c, c.done
	c.timer = time.AfterFunc(c.interval, func() {
		select {
		case out <- gen:
		case <-done:
		}
	})
}
