package cooldown

// ResetOption configures a single Reset call
type ResetOption func(*resetOptions)

type resetOptions struct {
	duration    float64
	hasDuration bool
	wrap        bool
}

// ResetTo replaces the duration as part of the reset
func ResetTo(duration float64) ResetOption {
	return func(o *resetOptions) {
		o.duration = duration
		o.hasDuration = true
	}
}

// ResetWrap overrides the cooldown's wrap policy for this reset
func ResetWrap(wrap bool) ResetOption {
	return func(o *resetOptions) { o.wrap = wrap }
}

// Reset restarts the countdown, optionally with a new duration, and clears pause
//
// Without wrap the temperature becomes the new duration. With wrap, a hot
// cooldown behaves the same, while a cold one (temperature <= 0) carries its
// overflow: the temperature becomes the duration it had before the reset plus
// the old temperature. The new duration is stored first, then the
// temperature is applied against it. The wrap policy defaults to the
// cooldown's Wrap setting.
func (c *Cooldown) Reset(opts ...ResetOption) *Cooldown {
	o := resetOptions{duration: c.duration, wrap: c.wrap}
	for _, opt := range opts {
		opt(&o)
	}

	target := o.duration
	if o.wrap {
		if old := c.temperature(); old <= 0 {
			target = c.duration + old
		}
	}

	c.paused = false
	c.frozen = 0.0
	c.duration = o.duration
	c.setTemperature(target)
	return c
}

// Pause freezes the countdown, chainable from the constructor
func (c *Cooldown) Pause() *Cooldown {
	c.setPaused(true)
	return c
}

// Start resumes a paused countdown from where it was frozen
func (c *Cooldown) Start() {
	c.setPaused(false)
}

// IsPaused reports whether the countdown is frozen
func (c *Cooldown) IsPaused() bool {
	return c.paused
}

// Cold reports whether the countdown has fully elapsed
func (c *Cooldown) Cold() bool {
	return c.isCold()
}

// Hot reports whether the countdown is still running down
func (c *Cooldown) Hot() bool {
	return !c.isCold()
}

// --- Properties ---

// Duration returns the configured countdown length in seconds
func (c *Cooldown) Duration() float64 {
	return c.duration
}

// SetDuration replaces the duration without rescaling the current window
func (c *Cooldown) SetDuration(v float64) {
	c.duration = v
}

// Wrap returns the reset wrap policy
func (c *Cooldown) Wrap() bool {
	return c.wrap
}

// SetWrap sets the reset wrap policy
func (c *Cooldown) SetWrap(v bool) {
	c.wrap = v
}

// Paused is the property form of IsPaused
func (c *Cooldown) Paused() bool {
	return c.paused
}

// SetPaused pauses or resumes the countdown
func (c *Cooldown) SetPaused(v bool) {
	c.setPaused(v)
}

// Temperature returns signed seconds until expiry, negative once overdue
func (c *Cooldown) Temperature() float64 {
	return c.temperature()
}

// SetTemperature moves the countdown so it reads v now
func (c *Cooldown) SetTemperature(v float64) {
	c.setTemperature(v)
}

// Remaining returns seconds left, never negative
func (c *Cooldown) Remaining() float64 {
	return c.remaining()
}

// SetRemaining sets the temperature to v clamped to >= 0
func (c *Cooldown) SetRemaining(v float64) {
	c.setRemaining(v)
}

// Normalized returns progress in [0, 1]: 0 just started, 1 cold
// A zero duration always reports 0
func (c *Cooldown) Normalized() float64 {
	if c.duration == 0 {
		return 0.0
	}
	return 1 - c.remaining()/c.duration
}

// SetNormalized sets the temperature to duration * v
func (c *Cooldown) SetNormalized(v float64) {
	c.setTemperature(c.duration * v)
}

// State is a point-in-time reading of a cooldown
type State struct {
	Duration    float64 `json:"duration" yaml:"duration"`
	Wrap        bool    `json:"wrap" yaml:"wrap"`
	Paused      bool    `json:"paused" yaml:"paused"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Remaining   float64 `json:"remaining" yaml:"remaining"`
	Normalized  float64 `json:"normalized" yaml:"normalized"`
	Cold        bool    `json:"cold" yaml:"cold"`
}

// State derives every reading from a single clock read
func (c *Cooldown) State() State {
	t := c.temperature()
	r := max(t, 0.0)
	n := 0.0
	if c.duration != 0 {
		n = 1 - r/c.duration
	}
	return State{
		Duration:    c.duration,
		Wrap:        c.wrap,
		Paused:      c.paused,
		Temperature: t,
		Remaining:   r,
		Normalized:  n,
		Cold:        t <= 0,
	}
}
