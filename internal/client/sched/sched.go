// Package sched provides a cancellable delayed-task scheduler with an
// injectable clock, so time-driven behavior (like the editor's
// auto-save debounce) can be unit tested without wall-clock sleeps.
package sched

import "time"

// Timer is a pending delayed call
type Timer interface {
	// Stop cancels the timer. It reports whether the call was still
	// pending (false if it already fired or was stopped).
	Stop() bool
}

// Clock abstracts time for the scheduler
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// realClock delegates to the time package
type realClock struct{}

// RealClock returns a Clock backed by wall-clock time
func RealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return realTimer{t: time.AfterFunc(d, f)}
}

type realTimer struct {
	t *time.Timer
}

func (rt realTimer) Stop() bool {
	return rt.t.Stop()
}

// Handle cancels a scheduled task
type Handle struct {
	timer Timer
}

// Cancel stops the task. It reports whether the task was still
// pending. Cancelling a nil or already-fired handle is a no-op.
func (h *Handle) Cancel() bool {
	if h == nil || h.timer == nil {
		return false
	}
	return h.timer.Stop()
}

// Scheduler schedules one-shot delayed tasks on a Clock
type Scheduler struct {
	clock Clock
}

// New creates a scheduler on the given clock
func New(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// Schedule runs fn once after d and returns a cancellation handle.
// Debouncing is cancel-then-reschedule: callers cancel the previous
// handle before scheduling again.
func (s *Scheduler) Schedule(d time.Duration, fn func()) *Handle {
	return &Handle{timer: s.clock.AfterFunc(d, fn)}
}
