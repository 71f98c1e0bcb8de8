package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeNow struct {
	t time.Time
}

func (f *fakeNow) now() time.Time {
	return f.t
}

func (f *fakeNow) advance(ms int) {
	f.t = f.t.Add(time.Duration(ms) * time.Millisecond)
}

func TestFrameClockStoppedNeverFires(t *testing.T) {
	fn := &fakeNow{t: time.Unix(0, 0)}
	c := NewFrameClock(fn.now)
	fn.advance(1000)
	require.False(t, c.Due())
	require.False(t, c.Running())
}

func TestFrameClockFiresOncePerInterval(t *testing.T) {
	fn := &fakeNow{t: time.Unix(0, 0)}
	c := NewFrameClock(fn.now)
	c.Rearm(140)

	fn.advance(139)
	require.False(t, c.Due())
	fn.advance(1)
	require.True(t, c.Due())
	require.False(t, c.Due())

	fn.advance(140)
	require.True(t, c.Due())
}

func TestFrameClockDoesNotAccumulate(t *testing.T) {
	fn := &fakeNow{t: time.Unix(0, 0)}
	c := NewFrameClock(fn.now)
	c.Rearm(100)

	// a long stall yields a single tick, not a burst
	fn.advance(1000)
	require.True(t, c.Due())
	require.False(t, c.Due())
}

func TestFrameClockKeepsRateAtFrameRate(t *testing.T) {
	const (
		frame  = time.Second / 60
		frames = 600
	)
	intervals := []int{}
	for ms := 140; ms > 70; ms -= 4 {
		intervals = append(intervals, ms)
	}
	intervals = append(intervals, 70)

	prev := 0
	for _, interval := range intervals {
		fn := &fakeNow{t: time.Unix(0, 0)}
		c := NewFrameClock(fn.now)
		c.Rearm(interval)

		ticks := 0
		for i := 0; i < frames; i++ {
			fn.t = fn.t.Add(frame)
			if c.Due() {
				ticks++
			}
		}
		expected := float64(frames*int(frame)) / float64(time.Duration(interval)*time.Millisecond)
		require.InDelta(t, expected, ticks, 1, "interval %dms", interval)
		// every speed-up must be visible at 60 FPS
		require.Greater(t, ticks, prev, "interval %dms", interval)
		prev = ticks
	}
}

func TestFrameClockStopAndRearm(t *testing.T) {
	fn := &fakeNow{t: time.Unix(0, 0)}
	c := NewFrameClock(fn.now)
	c.Rearm(100)
	fn.advance(50)
	c.Stop()
	fn.advance(5000)
	require.False(t, c.Due())

	c.Rearm(136)
	fn.advance(135)
	require.False(t, c.Due())
	fn.advance(1)
	require.True(t, c.Due())
}

func TestTimerClockDeliversAndStops(t *testing.T) {
	c := NewTimerClock()
	defer c.Close()

	c.Rearm(5)
	select {
	case gen := <-c.C():
		require.True(t, c.Fire(gen))
	case <-time.After(time.Second):
		t.Fatal("tick never arrived")
	}

	c.Stop()
	require.False(t, c.Running())
	select {
	case gen := <-c.C():
		require.False(t, c.Fire(gen))
	case <-time.After(30 * time.Millisecond):
	}
}

func TestTimerClockRejectsStaleGeneration(t *testing.T) {
	c := NewTimerClock()
	defer c.Close()

	c.Rearm(1000)
	stale := c.gen
	c.Rearm(5)
	require.False(t, c.Fire(stale))

	select {
	case gen := <-c.C():
		require.True(t, c.Fire(gen))
	case <-time.After(time.Second):
		t.Fatal("tick never arrived")
	}
}
