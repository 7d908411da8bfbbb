package clock

import "time"

// Delta measures the time between successive DT calls
type Delta struct {
	clock Clock
	last  time.Time
}

// NewDelta starts measuring from c's current time, nil selects Default
func NewDelta(c Clock) *Delta {
	if c == nil {
		c = Default
	}
	return &Delta{clock: c, last: c.Now()}
}

// DT returns seconds since the previous call, or since construction
func (d *Delta) DT() float64 {
	now := d.clock.Now()
	dt := now.Sub(d.last).Seconds()
	d.last = now
	return dt
}
