// Package clock provides the time sources cooldowns read "now" from.
//
// System reads the wall clock with its monotonic component. Mock is a
// settable clock for deterministic tests. Pausable derives game time from
// another clock and stops advancing while paused, so every cooldown sharing
// it freezes together.
package clock

import "time"

// Clock is the single "now" injection point
type Clock interface {
	Now() time.Time
}

// System provides the real system time with monotonic clock readings
type System struct{}

// NewSystem creates a new monotonic time source
func NewSystem() *System {
	return &System{}
}

// Now returns the current time with monotonic clock reading
func (s *System) Now() time.Time {
	return time.Now()
}

// Default is the clock used when none is injected
var Default Clock = NewSystem()

// Duration converts float seconds to a duration
// Values outside the time.Duration range saturate, NaN maps to zero
func Duration(seconds float64) time.Duration {
	ns := seconds * float64(time.Second)
	switch {
	case ns != ns:
		return 0
	case ns >= float64(maxDuration):
		return maxDuration
	case ns <= float64(minDuration):
		return minDuration
	}
	return time.Duration(ns)
}

const (
	maxDuration = time.Duration(1<<63 - 1)
	minDuration = time.Duration(-1 << 63)
)
