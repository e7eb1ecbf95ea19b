package core

import (
	"context"
	"time"
)

// DefaultDelay is the pause between animated rounds.
const DefaultDelay = 100 * time.Millisecond

// Pacer spaces out animated rounds by a fixed delay.
type Pacer struct {
	delay time.Duration
}

// NewPacer constructs a Pacer. A non-positive delay disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	if delay < 0 {
		delay = 0
	}
	return &Pacer{delay: delay}
}

// Delay returns the configured pause.
func (p *Pacer) Delay() time.Duration { return p.delay }

// Wait blocks for one delay or until ctx is done, whichever comes first.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.delay == 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
