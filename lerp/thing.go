// Package lerp provides time-based gauges that interpolate between two values
// over the life of a cooldown.
//
//	alpha := lerp.New(0, 255, 5)
//	for {
//		sprite.SetAlpha(alpha.Value())
//		if alpha.Finished() {
//			sprite.Kill()
//		}
//	}
package lerp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/cooldown/clock"
	"github.com/lixenwraith/cooldown/cooldown"
	"github.com/lixenwraith/cooldown/vmath"
)

// Sentinel errors
var (
	ErrUnsupportedValue = errors.New("value must be a number, a *Thing or a (from, to, seconds) triple")
	ErrUnknownRepeat    = errors.New("unknown repeat mode")
)

// RepeatMode selects what happens once the duration has passed
type RepeatMode int

const (
	RepeatNone    RepeatMode = iota // Hold the end value
	RepeatRestart                   // Jump back to the start value
	RepeatBounce                    // Swap endpoints and run back
)

var repeatNames = [...]string{"none", "restart", "bounce"}

func (m RepeatMode) String() string {
	if m < 0 || int(m) >= len(repeatNames) {
		return fmt.Sprintf("RepeatMode(%d)", int(m))
	}
	return repeatNames[m]
}

// ParseRepeat resolves a repeat mode by name, empty means none
func ParseRepeat(s string) (RepeatMode, error) {
	if s == "" {
		return RepeatNone, nil
	}
	for i, name := range repeatNames {
		if strings.EqualFold(name, s) {
			return RepeatMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRepeat, s)
}

// Thing lerps between From and To as its Duration cooldown runs down
// Not internally synchronized
type Thing struct {
	From     float64
	To       float64
	Duration *cooldown.Cooldown
	Ease     vmath.EaseFunc
	Repeat   RepeatMode

	// Restarts left before the gauge stops, negative is unlimited
	loops int
}

// Option configures a Thing
type Option func(*config)

type config struct {
	ease   vmath.EaseFunc
	repeat RepeatMode
	loops  int
	clock  clock.Clock
}

// WithEase puts an easing curve over t
func WithEase(fn vmath.EaseFunc) Option {
	return func(c *config) { c.ease = fn }
}

// WithRepeat sets the behavior after the duration has passed
func WithRepeat(m RepeatMode) Option {
	return func(c *config) { c.repeat = m }
}

// WithLoops limits a repeating gauge to n cycles, n <= 0 is unlimited
func WithLoops(n int) Option {
	return func(c *config) { c.loops = n }
}

// WithClock sets the clock of the cooldown New creates
func WithClock(clk clock.Clock) Option {
	return func(c *config) { c.clock = clk }
}

// New creates a gauge running over seconds
func New(from, to, seconds float64, opts ...Option) *Thing {
	cfg := apply(opts)
	cd := cooldown.New(seconds, cooldown.WithClock(cfg.clock))
	return build(from, to, cd, cfg)
}

// NewWithCooldown creates a gauge over an existing cooldown, which it shares
// with the caller so the lerp can be paused or reset through it
func NewWithCooldown(from, to float64, cd *cooldown.Cooldown, opts ...Option) *Thing {
	return build(from, to, cd, apply(opts))
}

func apply(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func build(from, to float64, cd *cooldown.Cooldown, cfg config) *Thing {
	ease := cfg.ease
	if ease == nil {
		ease = vmath.Linear
	}

	th := &Thing{
		From:     from,
		To:       to,
		Duration: cd,
		Ease:     ease,
		Repeat:   cfg.repeat,
		loops:    cfg.loops - 1,
	}
	if cfg.loops <= 0 {
		th.loops = -1
	}

	// A zero-length gauge is cold from the start; it reads as the start value
	if cd.Duration() == 0 {
		th.To = th.From
	}
	return th
}

// Value returns the current lerped value
func (th *Thing) Value() float64 {
	// Timing is read once; a separate Cold() check could disagree with t
	t := th.Duration.Normalized()

	if t >= 1.0 && th.Repeat != RepeatNone {
		if th.loops == 0 {
			return th.To
		}
		if th.loops > 0 {
			th.loops--
		}

		if th.Repeat == RepeatBounce {
			th.From, th.To = th.To, th.From
		}

		th.Duration.Reset(cooldown.ResetWrap(true))
		t = th.Duration.Normalized()
	}

	if t < 1.0 {
		return vmath.Lerp(th.From, th.To, th.Ease(t))
	}
	return th.To
}

// Finished reports whether the gauge will not change anymore
func (th *Thing) Finished() bool {
	cold := th.Duration.Cold()
	return cold && (th.Repeat == RepeatNone || th.loops == 0)
}

// Loops returns the restarts left, negative is unlimited
func (th *Thing) Loops() int {
	return th.loops
}

// --- Coercion ---

func (th *Thing) Float() float64 { return th.Value() }
func (th *Thing) Int() int64     { return int64(th.Value()) }
func (th *Thing) Bool() bool     { return th.Value() != 0 }

// Compare compares the current value against other
func (th *Thing) Compare(op cooldown.Op, other any) (bool, error) {
	return cooldown.CompareValues(op, th.Value(), other)
}
