package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/cooldown/vmath"
)

// Wave maps a phase in [0, 1) to a sample in [-1, 1]
type Wave func(phase float64) float64

// Waveforms
var (
	Sine   Wave = func(p float64) float64 { return math.Sin(2 * math.Pi * p) }
	Square Wave = func(p float64) float64 { return math.Copysign(1, 0.5-p) }
	Saw    Wave = func(p float64) float64 { return vmath.Lerp(-1, 1, p) }
	Noise  Wave = func(float64) float64 { return rand.Float64()*2 - 1 }
)

// Tone streams a fixed-length wave at freq Hz on both channels
func Tone(freq float64, length time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	left := rate.N(length)
	step := freq / float64(rate)
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n := min(len(samples), left)
		for i := range samples[:n] {
			v := wave(phase)
			samples[i] = [2]float64{v, v}
			_, phase = math.Modf(phase + step)
		}
		left -= n
		return n, n > 0
	})
}

// envelope ramps its source in over the attack and out over the release
type envelope struct {
	src          beep.Streamer
	pos          int
	attackEnd    int
	releaseStart int
	end          int
}

// NewEnvelope shapes s, attack and release are trimmed to fit length
func NewEnvelope(s beep.Streamer, length, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	end := rate.N(length)
	att := min(rate.N(attack), end)
	rel := min(rate.N(release), end-att)

	return &envelope{
		src:          s,
		attackEnd:    att,
		releaseStart: end - rel,
		end:          end,
	}
}

// gain ramps 0→1 over the attack and 1→0 over the release
func (e *envelope) gain(pos int) float64 {
	switch {
	case pos < e.attackEnd:
		return vmath.InvLerp(0, float64(e.attackEnd), float64(pos))
	case pos >= e.releaseStart && e.end > e.releaseStart:
		return vmath.Clamp(vmath.InvLerp(float64(e.end), float64(e.releaseStart), float64(pos)), 0, 1)
	}
	return 1.0
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	room := e.end - e.pos
	if room <= 0 {
		return 0, false
	}

	n, ok := e.src.Stream(samples[:min(len(samples), room)])
	for i := range samples[:n] {
		g := e.gain(e.pos + i)
		samples[i][0] *= g
		samples[i][1] *= g
	}
	e.pos += n
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// scale applies a linear volume, 0 is silence
func scale(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: vol - 1}
}

// --- Cues ---

type cue struct {
	freq    float64
	length  time.Duration
	attack  time.Duration
	release time.Duration
	wave    Wave
	level   float64
}

func (c cue) stream(rate beep.SampleRate) beep.Streamer {
	return scale(NewEnvelope(Tone(c.freq, c.length, c.wave, rate), c.length, c.attack, c.release, rate), c.level)
}

var (
	// Bell partials, A5 and its octave
	chimeFundamental = cue{880, 600 * time.Millisecond, 5 * time.Millisecond, 550 * time.Millisecond, Sine, 0.7}
	chimeOvertone    = cue{1760, 600 * time.Millisecond, 5 * time.Millisecond, 200 * time.Millisecond, Sine, 0.3}

	clickCue = cue{1320, 40 * time.Millisecond, 2 * time.Millisecond, 30 * time.Millisecond, Square, 0.5}
	buzzCue  = cue{100, 80 * time.Millisecond, 5 * time.Millisecond, 20 * time.Millisecond, Saw, 0.8}
)

// Chime is a short bell announcing a cooldown went cold
func Chime(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return scale(beep.Mix(chimeFundamental.stream(rate), chimeOvertone.stream(rate)), cfg.Volume)
}

// Click is a short tick for a reset
func Click(cfg Config) beep.Streamer {
	return scale(clickCue.stream(beep.SampleRate(cfg.SampleRate)), cfg.Volume)
}

// Buzz is a harsh tone for an action refused while hot
func Buzz(cfg Config) beep.Streamer {
	return scale(buzzCue.stream(beep.SampleRate(cfg.SampleRate)), cfg.Volume)
}

// SoundType identifies a sound effect
type SoundType int

const (
	SoundChime SoundType = iota
	SoundClick
	SoundBuzz
)

// Effect returns the streamer for t, nil for an unknown type
func Effect(t SoundType, cfg Config) beep.Streamer {
	switch t {
	case SoundChime:
		return Chime(cfg)
	case SoundClick:
		return Click(cfg)
	case SoundBuzz:
		return Buzz(cfg)
	}
	return nil
}
