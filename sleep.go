package span

import (
	"context"
	"time"
)

// Sleep blocks until d has elapsed or ctx is done, whichever is first.
// It returns nil after a full sleep, or ctx.Err() if cancelled. A zero or
// negative span returns immediately, unless ctx is already done.
//
// Precision is limited to nanoseconds, and in practice to the granularity
// of the runtime's timers.
func Sleep(ctx context.Context, d Span) error {
	return sleep(ctx, time.Duration(d.ToNanoseconds()))
}

// SleepNanoseconds is [Sleep] for a count of nanoseconds.
func SleepNanoseconds(ctx context.Context, ns uint64) error {
	return sleep(ctx, time.Duration(min(ns, 1<<63-1)))
}

// SleepMilliseconds is [Sleep] for a count of milliseconds.
func SleepMilliseconds(ctx context.Context, ms uint32) error {
	return sleep(ctx, time.Duration(ms)*time.Millisecond)
}

// SleepSeconds is [Sleep] for a count of seconds.
func SleepSeconds(ctx context.Context, sec uint32) error {
	return sleep(ctx, time.Duration(sec)*time.Second)
}

func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
