package application

import (
	"context"
	"time"
)

// Base delays of the simulated backend calls.
const (
	DomainSearchDelay   = 1500 * time.Millisecond
	ContactSubmitDelay  = 2000 * time.Millisecond
	ProfileSaveDelay    = 1000 * time.Millisecond
	PasswordChangeDelay = 1000 * time.Millisecond
)

// Latency simulates network round trips. Scale multiplies every delay; zero
// disables waiting.
type Latency struct {
	Scale float64
}

// Wait blocks for base scaled by l.Scale or until ctx is done. A cancelled
// wait returns the context error and the caller must drop its result.
func (l Latency) Wait(ctx context.Context, base time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d := time.Duration(float64(base) * l.Scale)
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
