package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.WarnLevel)

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Str("cooldown", "fire").Msg("visible")
	out := buf.String()
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "cooldown=")
	assert.Contains(t, out, "fire")
}

func TestNewFileWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewFile(&buf, zerolog.DebugLevel)
	l.Debug().Bool("deprecated", true).Msg("deprecation warning")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, true, entry["deprecated"])
	assert.Equal(t, "deprecation warning", entry["message"])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":       zerolog.InfoLevel,
		"debug":  zerolog.DebugLevel,
		" WARN ": zerolog.WarnLevel,
		"error":  zerolog.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestConfigureOnce(t *testing.T) {
	var first, second bytes.Buffer
	a := Configure(&first, zerolog.ErrorLevel)
	b := Configure(&second, zerolog.DebugLevel)
	require.Same(t, a, b)
	assert.Equal(t, zerolog.ErrorLevel, b.GetLevel())

	b.Error().Msg("routed")
	assert.Contains(t, first.String(), "routed")
	assert.Zero(t, second.Len())
}
