package cooldown

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/cooldown/clock"
)

var defaultLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Cooldown is a countdown timer measured in float seconds
type Cooldown struct {
	origin   time.Time // Start of the current window, live while running
	duration float64
	wrap     bool
	paused   bool
	frozen   float64 // Temperature captured at pause, live while paused

	clock clock.Clock
	log   *zerolog.Logger
}

// Option configures a Cooldown at construction
type Option func(*options)

type options struct {
	wrap   bool
	cold   bool
	paused bool
	clock  clock.Clock
	log    *zerolog.Logger
}

// WithWrap sets the wrap policy consulted by Reset
func WithWrap(wrap bool) Option {
	return func(o *options) { o.wrap = wrap }
}

// WithCold creates the cooldown already expired
func WithCold(cold bool) Option {
	return func(o *options) { o.cold = cold }
}

// WithPaused creates the cooldown paused at its full duration
func WithPaused(paused bool) Option {
	return func(o *options) { o.paused = paused }
}

// WithClock injects the time source, nil selects clock.Default
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the sink for deprecation warnings
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = &l }
}

// New creates a cooldown of duration seconds
func New(duration float64, opts ...Option) *Cooldown {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Cooldown{
		duration: duration,
		wrap:     o.wrap,
		clock:    o.clock,
		log:      o.log,
	}

	// Pause first, otherwise the timer is already running
	if o.paused {
		c.setPaused(true)
	}
	c.setTemperature(c.duration)
	if o.cold {
		c.setCold(true)
	}
	return c
}

// Copy duplicates every field of src verbatim, clock and logger included
func Copy(src *Cooldown) *Cooldown {
	dup := *src
	return &dup
}

// Clone returns an independent copy of c
func (c *Cooldown) Clone() *Cooldown {
	return Copy(c)
}

// From creates a cooldown from either an existing cooldown or a number
// A cooldown argument is copied and opts are ignored; anything else is
// coerced to a duration with ToFloat
func From(v any, opts ...Option) (*Cooldown, error) {
	switch src := v.(type) {
	case *Cooldown:
		if src == nil {
			return nil, fmt.Errorf("%w: nil cooldown", ErrConversion)
		}
		return Copy(src), nil
	case Cooldown:
		return Copy(&src), nil
	}

	d, err := ToFloat(v)
	if err != nil {
		return nil, err
	}
	return New(d, opts...), nil
}

// String formats the construction parameters
func (c *Cooldown) String() string {
	return fmt.Sprintf("Cooldown(%s, wrap=%t, paused=%t)",
		strconv.FormatFloat(c.duration, 'g', -1, 64), c.wrap, c.paused)
}

// --- State primitives ---

func (c *Cooldown) now() time.Time {
	if c.clock == nil {
		return clock.Default.Now()
	}
	return c.clock.Now()
}

func (c *Cooldown) logger() *zerolog.Logger {
	if c.log == nil {
		return &defaultLogger
	}
	return c.log
}

func (c *Cooldown) temperature() float64 {
	if c.paused {
		return c.frozen
	}
	return c.duration - c.now().Sub(c.origin).Seconds()
}

// setTemperature routes to the live field: frozen while paused, origin otherwise
func (c *Cooldown) setTemperature(v float64) {
	if c.paused {
		c.frozen = v
		return
	}
	c.origin = c.now().Add(-clock.Duration(c.duration - v))
}

func (c *Cooldown) remaining() float64 {
	return max(c.temperature(), 0.0)
}

func (c *Cooldown) setRemaining(v float64) {
	c.setTemperature(max(v, 0.0))
}

func (c *Cooldown) isCold() bool {
	return c.temperature() <= 0.0
}

func (c *Cooldown) setCold(cold bool) {
	if cold {
		c.setTemperature(0.0)
	} else {
		c.setTemperature(c.duration)
	}
}

// Unpausing always re-anchors on frozen, which is 0 unless a pause is live,
// so starting a running cooldown makes it cold
func (c *Cooldown) setPaused(paused bool) {
	if paused {
		c.frozen = c.temperature()
		c.paused = true
		return
	}
	c.paused = false
	c.setTemperature(c.frozen)
	c.frozen = 0.0
}
