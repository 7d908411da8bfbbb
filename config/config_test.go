package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cooldown/clock"
	"github.com/lixenwraith/cooldown/lerp"
)

const sample = `
log_level: debug
audio:
  enabled: false
  sample_rate: 22050
  volume: 0.25
cooldowns:
  - name: fire
    duration: 2
    cold: true
    key: f
  - name: tick
    duration: 1
    wrap: true
  - name: frozen
    duration: 5
    paused: true
lerps:
  - name: fade
    from: 255
    to: 0
    duration: 4
    ease: out_quad
    repeat: restart
    loops: 2
`

func TestDefaultIsValid(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	assert.Equal(t, zerolog.InfoLevel, p.Level())
	assert.NotEmpty(t, p.Cooldowns)
}

func TestParse(t *testing.T) {
	p, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, p.Level())
	assert.False(t, p.Audio.Enabled)
	assert.Equal(t, 22050, p.Audio.SampleRate)
	assert.InDelta(t, 0.25, p.Audio.Volume, 1e-9)

	require.Len(t, p.Cooldowns, 3)
	assert.Equal(t, CooldownDef{Name: "fire", Duration: 2, Cold: true, Key: "f"}, p.Cooldowns[0])
	assert.True(t, p.Cooldowns[1].Wrap)
	assert.True(t, p.Cooldowns[2].Paused)

	require.Len(t, p.Lerps, 1)
	assert.Equal(t, "out_quad", p.Lerps[0].Ease)
	assert.Equal(t, 2, p.Lerps[0].Loops)
}

func TestParseKeepsDefaultsForOmittedSections(t *testing.T) {
	p, err := Parse([]byte("cooldowns:\n  - name: a\n    duration: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, "info", p.LogLevel)
	assert.Equal(t, Default().Audio, p.Audio)
	assert.Len(t, p.Cooldowns, 1)
	assert.Empty(t, p.Lerps)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "cooldowns: [\n"},
		{"log level", "log_level: loud\n"},
		{"volume", "audio: {volume: 1.5}\n"},
		{"sample rate", "audio: {enabled: true, sample_rate: 0}\n"},
		{"missing name", "cooldowns: [{duration: 1}]\n"},
		{"duplicate name", "cooldowns: [{name: a, duration: 1}]\nlerps: [{name: a, duration: 1}]\n"},
		{"infinite duration", "cooldowns: [{name: a, duration: .inf}]\n"},
		{"nan lerp", "lerps: [{name: l, from: .nan, duration: 1}]\n"},
		{"long key", "cooldowns: [{name: a, duration: 1, key: ab}]\n"},
		{"shared key", "cooldowns: [{name: a, duration: 1, key: x}, {name: b, duration: 1, key: x}]\n"},
		{"ease", "lerps: [{name: l, duration: 1, ease: wobble}]\n"},
		{"repeat", "lerps: [{name: l, duration: 1, repeat: forever}]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Cooldowns, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidProfile)
}

func TestBuild(t *testing.T) {
	p, err := Parse([]byte(sample))
	require.NoError(t, err)

	clk := clock.NewMock(time.Unix(1000, 0))
	cds := p.BuildCooldowns(clk, zerolog.Nop())
	require.Len(t, cds, 3)

	fire := cds[0]
	assert.Equal(t, "fire", fire.Name)
	assert.Equal(t, 'f', fire.Key)
	assert.True(t, fire.Value.Cold())

	tick := cds[1]
	assert.Equal(t, rune(0), tick.Key)
	assert.True(t, tick.Value.Wrap())
	assert.InDelta(t, 1.0, tick.Value.Temperature(), 1e-9)

	frozen := cds[2].Value
	clk.AdvanceSeconds(3)
	assert.True(t, frozen.IsPaused())
	assert.InDelta(t, 5.0, frozen.Temperature(), 1e-9)
	assert.InDelta(t, -2.0, tick.Value.Temperature(), 1e-9)

	lerps := p.BuildLerps(clk)
	require.Len(t, lerps, 1)
	fade := lerps[0].Value
	assert.Equal(t, "fade", lerps[0].Name)
	assert.Equal(t, lerp.RepeatRestart, fade.Repeat)
	assert.InDelta(t, 255.0, fade.Value(), 1e-9)

	clk.AdvanceSeconds(2)
	// out_quad(0.5) = 0.75
	assert.InDelta(t, 255-0.75*255, fade.Value(), 1e-9)
}

func TestBuildSet(t *testing.T) {
	clk := clock.NewMock(time.Unix(0, 0))
	set := Default().Build(clk, zerolog.Nop())

	assert.Len(t, set.Cooldowns, len(Default().Cooldowns))
	assert.Len(t, set.Lerps, len(Default().Lerps))
	assert.Equal(t, '1', set.Cooldowns[0].Key)
}
