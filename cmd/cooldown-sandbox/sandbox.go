package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/cooldown/audio"
	"github.com/lixenwraith/cooldown/clock"
	"github.com/lixenwraith/cooldown/config"
	"github.com/lixenwraith/cooldown/cooldown"
	"github.com/lixenwraith/cooldown/lerp"
	"github.com/lixenwraith/cooldown/vmath"
)

// SoundPlayer receives the sandbox's sound cues
type SoundPlayer interface {
	Play(t audio.SoundType)
}

type slot struct {
	name    string
	key     rune
	cd      *cooldown.Cooldown
	wasCold bool
}

type gauge struct {
	name string
	th   *lerp.Thing
}

// Sandbox is the interactive state, independent of the screen
type Sandbox struct {
	clock  *clock.Pausable
	frame  *clock.Delta
	fps    float64 // Smoothed game-time frame rate
	slots  []*slot
	gauges []gauge
	sounds SoundPlayer
	log    zerolog.Logger

	selected int
	status   string
}

// NewSandbox builds the profile's timers on clk
func NewSandbox(p *config.Profile, clk *clock.Pausable, sounds SoundPlayer, log zerolog.Logger) *Sandbox {
	set := p.Build(clk, log)

	sb := &Sandbox{
		clock:  clk,
		frame:  clock.NewDelta(clk),
		sounds: sounds,
		log:    log,
		status: "space fire · r reset · w wrap · p pause · P pause all · q quit",
	}
	for _, n := range set.Cooldowns {
		sb.slots = append(sb.slots, &slot{
			name:    n.Name,
			key:     n.Key,
			cd:      n.Value,
			wasCold: n.Value.Cold(),
		})
	}
	for _, n := range set.Lerps {
		sb.gauges = append(sb.gauges, gauge{name: n.Name, th: n.Value})
	}
	return sb
}

func (sb *Sandbox) current() *slot {
	if sb.selected < 0 || sb.selected >= len(sb.slots) {
		return nil
	}
	return sb.slots[sb.selected]
}

// Tick plays a chime for every cooldown that went cold since the last tick
// and updates the frame rate, which holds while the clock is paused
func (sb *Sandbox) Tick() {
	if dt := sb.frame.DT(); dt > 0 {
		if sb.fps == 0 {
			sb.fps = 1 / dt
		} else {
			sb.fps = vmath.Lerp(sb.fps, 1/dt, 0.1)
		}
	}

	for _, s := range sb.slots {
		cold := s.cd.Cold()
		if cold && !s.wasCold {
			sb.sounds.Play(audio.SoundChime)
			sb.log.Debug().Str("cooldown", s.name).Msg("ready")
		}
		s.wasCold = cold
	}
}

// HandleKey applies one key press, returning false to quit
func (sb *Sandbox) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		sb.selectIndex(sb.selected - 1)
		return true
	case tcell.KeyDown:
		sb.selectIndex(sb.selected + 1)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	r := ev.Rune()
	switch r {
	case 'q':
		return false
	case ' ':
		sb.fire()
	case 'r':
		sb.reset(false)
	case 'w':
		sb.reset(true)
	case 'p':
		sb.togglePause()
	case 'P':
		if sb.clock.Toggle() {
			sb.status = "all paused"
		} else {
			sb.status = "all running"
		}
		sb.log.Info().Bool("paused", sb.clock.IsPaused()).Msg("global pause")
	default:
		sb.selectKey(r)
	}
	return true
}

func (sb *Sandbox) selectIndex(i int) {
	if i >= 0 && i < len(sb.slots) {
		sb.selected = i
	}
}

func (sb *Sandbox) selectKey(r rune) {
	for i, s := range sb.slots {
		if s.key != 0 && s.key == r {
			sb.selected = i
			return
		}
	}
	if r >= '1' && r <= '9' {
		sb.selectIndex(int(r - '1'))
	}
}

func (sb *Sandbox) fire() {
	s := sb.current()
	if s == nil {
		return
	}
	if s.cd.Hot() {
		sb.sounds.Play(audio.SoundBuzz)
		sb.status = fmt.Sprintf("%s not ready: %.1fs", s.name, s.cd.Remaining())
		return
	}
	s.cd.Reset()
	s.wasCold = s.cd.Cold()
	sb.sounds.Play(audio.SoundClick)
	sb.status = fmt.Sprintf("%s fired", s.name)
}

func (sb *Sandbox) reset(wrap bool) {
	s := sb.current()
	if s == nil {
		return
	}
	s.cd.Reset(cooldown.ResetWrap(wrap))
	s.wasCold = s.cd.Cold()
	sb.status = fmt.Sprintf("%s reset to %.2fs", s.name, s.cd.Temperature())
}

func (sb *Sandbox) togglePause() {
	s := sb.current()
	if s == nil {
		return
	}
	s.cd.SetPaused(!s.cd.IsPaused())
	if s.cd.IsPaused() {
		sb.status = fmt.Sprintf("%s paused", s.name)
	} else {
		sb.status = fmt.Sprintf("%s resumed", s.name)
	}
}
