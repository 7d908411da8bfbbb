// Package config loads YAML profiles describing a set of named cooldowns
// and lerp gauges for the sandbox and REPL binaries.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/cooldown/audio"
	"github.com/lixenwraith/cooldown/clock"
	"github.com/lixenwraith/cooldown/cooldown"
	"github.com/lixenwraith/cooldown/lerp"
	"github.com/lixenwraith/cooldown/vmath"
)

// ErrInvalidProfile wraps every validation failure
var ErrInvalidProfile = errors.New("invalid profile")

// Profile is the root of a YAML profile
type Profile struct {
	LogLevel  string        `yaml:"log_level"`
	Audio     audio.Config  `yaml:"audio"`
	Cooldowns []CooldownDef `yaml:"cooldowns"`
	Lerps     []LerpDef     `yaml:"lerps"`
}

// CooldownDef describes one named cooldown
type CooldownDef struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
	Wrap     bool    `yaml:"wrap"`
	Cold     bool    `yaml:"cold"`
	Paused   bool    `yaml:"paused"`
	Key      string  `yaml:"key"` // Single-rune hotkey in the sandbox
}

// LerpDef describes one named lerp gauge
type LerpDef struct {
	Name     string  `yaml:"name"`
	From     float64 `yaml:"from"`
	To       float64 `yaml:"to"`
	Duration float64 `yaml:"duration"`
	Ease     string  `yaml:"ease"`
	Repeat   string  `yaml:"repeat"`
	Loops    int     `yaml:"loops"`
}

// Default returns the built-in profile
func Default() *Profile {
	return &Profile{
		LogLevel: "info",
		Audio:    audio.DefaultConfig(),
		Cooldowns: []CooldownDef{
			{Name: "fire", Duration: 1.5, Cold: true, Key: "1"},
			{Name: "dash", Duration: 4, Cold: true, Key: "2"},
			{Name: "heartbeat", Duration: 2, Wrap: true, Key: "3"},
			{Name: "shield", Duration: 10, Paused: true, Key: "4"},
		},
		Lerps: []LerpDef{
			{Name: "pulse", From: 0, To: 1, Duration: 1.5, Ease: "smoothstep", Repeat: "bounce"},
		},
	}
}

// Load reads and validates a profile file
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML profile over the defaults and validates it
// Lists given in the document replace the default lists
func Parse(data []byte) (*Profile, error) {
	p := Default()
	p.Cooldowns = nil
	p.Lerps = nil

	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks names, numbers and enum values
func (p *Profile) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(p.LogLevel)); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidProfile, p.LogLevel)
	}
	if p.Audio.Volume < 0 || p.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %v outside [0, 1]", ErrInvalidProfile, p.Audio.Volume)
	}
	if p.Audio.Enabled && p.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio sample_rate %d", ErrInvalidProfile, p.Audio.SampleRate)
	}

	names := make(map[string]bool)
	keys := make(map[string]string)
	for i, c := range p.Cooldowns {
		if err := checkName(names, c.Name, i); err != nil {
			return err
		}
		if !finite(c.Duration) {
			return fmt.Errorf("%w: cooldown %q duration %v", ErrInvalidProfile, c.Name, c.Duration)
		}
		if c.Key != "" {
			if len([]rune(c.Key)) != 1 {
				return fmt.Errorf("%w: cooldown %q key %q must be a single character", ErrInvalidProfile, c.Name, c.Key)
			}
			if other, dup := keys[c.Key]; dup {
				return fmt.Errorf("%w: key %q bound to both %q and %q", ErrInvalidProfile, c.Key, other, c.Name)
			}
			keys[c.Key] = c.Name
		}
	}

	for i, l := range p.Lerps {
		if err := checkName(names, l.Name, len(p.Cooldowns)+i); err != nil {
			return err
		}
		if !finite(l.Duration) || !finite(l.From) || !finite(l.To) {
			return fmt.Errorf("%w: lerp %q has a non-finite value", ErrInvalidProfile, l.Name)
		}
		if _, ok := vmath.EaseByName(l.Ease); !ok {
			return fmt.Errorf("%w: lerp %q ease %q, known: %s",
				ErrInvalidProfile, l.Name, l.Ease, strings.Join(vmath.EaseNames(), ", "))
		}
		if _, err := lerp.ParseRepeat(l.Repeat); err != nil {
			return fmt.Errorf("%w: lerp %q: %v", ErrInvalidProfile, l.Name, err)
		}
	}
	return nil
}

func checkName(seen map[string]bool, name string, idx int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: entry %d has no name", ErrInvalidProfile, idx)
	}
	if seen[name] {
		return fmt.Errorf("%w: duplicate name %q", ErrInvalidProfile, name)
	}
	seen[name] = true
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Level returns the parsed log level, info when unset
func (p *Profile) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(p.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Named pairs a constructed object with its profile name, in profile order
type Named[T any] struct {
	Name  string
	Key   rune
	Value T
}

// BuildCooldowns constructs the profile's cooldowns on clk
func (p *Profile) BuildCooldowns(clk clock.Clock, log zerolog.Logger) []Named[*cooldown.Cooldown] {
	out := make([]Named[*cooldown.Cooldown], 0, len(p.Cooldowns))
	for _, c := range p.Cooldowns {
		cd := cooldown.New(c.Duration,
			cooldown.WithWrap(c.Wrap),
			cooldown.WithCold(c.Cold),
			cooldown.WithPaused(c.Paused),
			cooldown.WithClock(clk),
			cooldown.WithLogger(log.With().Str("cooldown", c.Name).Logger()),
		)
		var key rune
		if c.Key != "" {
			key = []rune(c.Key)[0]
		}
		out = append(out, Named[*cooldown.Cooldown]{Name: c.Name, Key: key, Value: cd})
	}
	return out
}

// BuildLerps constructs the profile's lerp gauges on clk
// The profile must have passed Validate
func (p *Profile) BuildLerps(clk clock.Clock) []Named[*lerp.Thing] {
	out := make([]Named[*lerp.Thing], 0, len(p.Lerps))
	for _, l := range p.Lerps {
		ease, _ := vmath.EaseByName(l.Ease)
		repeat, _ := lerp.ParseRepeat(l.Repeat)
		th := lerp.New(l.From, l.To, l.Duration,
			lerp.WithClock(clk),
			lerp.WithEase(ease),
			lerp.WithRepeat(repeat),
			lerp.WithLoops(l.Loops),
		)
		out = append(out, Named[*lerp.Thing]{Name: l.Name, Value: th})
	}
	return out
}

// Set is everything a profile constructs
type Set struct {
	Cooldowns []Named[*cooldown.Cooldown]
	Lerps     []Named[*lerp.Thing]
}

// Build constructs the profile's cooldowns and lerps on clk
func (p *Profile) Build(clk clock.Clock, log zerolog.Logger) *Set {
	return &Set{
		Cooldowns: p.BuildCooldowns(clk, log),
		Lerps:     p.BuildLerps(clk),
	}
}
