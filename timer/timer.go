// Package timer provides a start/stop stopwatch for request durations.
package timer

import (
	"errors"
	"time"
)

// ErrInvalidState is returned by End when the timer was never started.
var ErrInvalidState = errors.New("timer has not been started, call Start first")

// Timer measures elapsed time in milliseconds. The zero value is an
// unstarted timer.
type Timer struct {
	start time.Time
	end   time.Time
}

// New returns an unstarted timer.
func New() *Timer {
	return &Timer{}
}

// Start records the current time and clears any previous end time.
func (t *Timer) Start() {
	t.start = time.Now()
	t.end = time.Time{}
}

// Started reports whether Start has been called.
func (t *Timer) Started() bool {
	return !t.start.IsZero()
}

// End records the end time and returns the milliseconds elapsed since Start.
//
// The start time is left in place, so calling End again without a new
// Start measures from the same origin and returns a larger value.
func (t *Timer) End() (float64, error) {
	if t.start.IsZero() {
		return 0, ErrInvalidState
	}
	t.end = time.Now()
	return float64(t.end.Sub(t.start)) / float64(time.Millisecond), nil
}
