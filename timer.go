package span

import (
	"github.com/clipperhouse/ntime"
)

// Timer measures elapsed time against a monotonic clock, so it is immune to
// wall-clock adjustments. The zero value has its start at the clock's
// epoch; use [StartTimer] or [Timer.Start].
type Timer struct {
	start ntime.Time
	now   func() ntime.Time
}

// StartTimer returns a running timer.
func StartTimer() Timer {
	t := Timer{}
	t.Start()
	return t
}

// Start (re)starts the timer at the current time.
func (t *Timer) Start() {
	t.start = t.clock()
}

func (t Timer) clock() ntime.Time {
	if t.now != nil {
		return t.now()
	}
	return ntime.Now()
}

// ElapsedNanoseconds returns the nanoseconds since the timer started.
func (t Timer) ElapsedNanoseconds() int64 {
	return max(int64(t.clock().Sub(t.start)), 0)
}

// ElapsedMicroseconds returns the whole microseconds since the timer started.
func (t Timer) ElapsedMicroseconds() int64 {
	return t.ElapsedNanoseconds() / 1e3
}

// ElapsedMilliseconds returns the whole milliseconds since the timer started.
func (t Timer) ElapsedMilliseconds() int64 {
	return t.ElapsedNanoseconds() / 1e6
}

// ElapsedSeconds returns the seconds since the timer started.
func (t Timer) ElapsedSeconds() float64 {
	return float64(t.ElapsedNanoseconds()) / 1e9
}

// Elapsed returns the time since the timer started as a span.
func (t Timer) Elapsed() Span {
	return New(t.ElapsedNanoseconds(), Nanoseconds)
}

// Lap returns the time since the timer started, and restarts it.
func (t *Timer) Lap() Span {
	now := t.clock()
	lap := New(max(int64(now.Sub(t.start)), 0), Nanoseconds)
	t.start = now
	return lap
}

// Expired reports whether at least d has passed since the timer started.
func (t Timer) Expired(d Span) bool {
	return t.ElapsedNanoseconds() >= d.ToNanoseconds()
}
