package repeater

import (
	"context"
	"time"
)

// Clock supplies the current time and a way to wait. Sleep should return
// early with the context error if the context is cancelled.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// WallClock is the Clock used in normal running
type WallClock struct{}

// Now returns the current time
func (WallClock) Now() time.Time {
	return time.Now()
}

// Sleep waits for the duration or until the context is done, whichever
// comes first
func (WallClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// InstantClock is a Clock which starts at the given time and advances by
// the requested amount whenever Sleep is called, without waiting. It is not
// safe for concurrent use.
type InstantClock struct {
	now time.Time
}

// NewInstantClock returns an InstantClock starting at the given time
func NewInstantClock(start time.Time) *InstantClock {
	return &InstantClock{now: start}
}

// Now returns the current time of the clock
func (c *InstantClock) Now() time.Time {
	return c.now
}

// Sleep advances the clock by d unless the context is already done
func (c *InstantClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.now = c.now.Add(d)

	return nil
}
