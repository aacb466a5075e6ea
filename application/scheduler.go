package application

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports false if the callback already ran
	// or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// RealScheduler schedules callbacks on the runtime timer wheel.
type RealScheduler struct{}

// AfterFunc implements Scheduler.
func (RealScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
