package vmath

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 0, 10, 0, 0},
		{"end", 0, 10, 1, 10},
		{"middle", 0, 10, 0.5, 5},
		{"descending", 255, 0, 0.2, 204},
		{"extrapolate", 0, 10, 1.5, 15},
		{"negative t", 0, 10, -0.5, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Lerp(tt.a, tt.b, tt.t), 1e-9)
		})
	}
}

func TestInvLerp(t *testing.T) {
	assert.InDelta(t, 0.5, InvLerp(0, 10, 5), 1e-9)
	assert.InDelta(t, 0.25, InvLerp(10, 20, 12.5), 1e-9)
	assert.InDelta(t, 2.0, InvLerp(0, 1, 2), 1e-9)

	// Degenerate range is not special-cased
	assert.True(t, math.IsInf(InvLerp(1, 1, 2), 1))
	assert.True(t, math.IsNaN(InvLerp(1, 1, 1)))
}

func TestLerpInvLerpRoundTrip(t *testing.T) {
	for _, v := range []float64{-3, 0, 0.1, 7.25, 100} {
		assert.InDelta(t, v, Lerp(-4, 12, InvLerp(-4, 12, v)), 1e-9)
	}
}

func TestRemap(t *testing.T) {
	assert.InDelta(t, 50.0, Remap(0, 10, 0, 100, 5), 1e-9)
	assert.InDelta(t, 0.0, Remap(0, 10, 100, 0, 10), 1e-9)
	assert.InDelta(t, 150.0, Remap(1, 2, 100, 200, 1.5), 1e-9)
	assert.True(t, math.IsNaN(Remap(3, 3, 0, 1, 3)))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.3, Clamp(0.3, 0, 1))
}

func TestCall(t *testing.T) {
	v, err := Call("lerp", 0, 10, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v, 1e-9)

	v, err = Call("invlerp", 0, 10, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-9)

	v, err = Call("remap", 0, 10, 0, 100, 5)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, v, 1e-9)
}

func TestCallArity(t *testing.T) {
	cases := map[string][]float64{
		"lerp":    {1, 2},
		"invlerp": {1, 2, 3, 4},
		"remap":   {1, 2, 3},
	}
	for name, args := range cases {
		_, err := Call(name, args...)
		assert.True(t, errors.Is(err, ErrArity), "%s with %d args: %v", name, len(args), err)
	}

	_, err := Call("slerp", 1, 2, 3)
	assert.ErrorIs(t, err, ErrUnknownFunc)
}

func TestArity(t *testing.T) {
	n, ok := Arity("remap")
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	_, ok = Arity("nope")
	assert.False(t, ok)
}

func TestEasing(t *testing.T) {
	for _, name := range EaseNames() {
		fn, ok := EaseByName(name)
		require.True(t, ok, name)
		assert.InDelta(t, 0.0, fn(0), 1e-9, name)
		assert.InDelta(t, 1.0, fn(1), 1e-9, name)
	}

	assert.InDelta(t, 0.25, InQuad(0.5), 1e-9)
	assert.InDelta(t, 0.75, OutQuad(0.5), 1e-9)
	assert.InDelta(t, 0.5, InOutQuad(0.5), 1e-9)
	assert.InDelta(t, 0.5, SmoothStep(0.5), 1e-9)

	fn, ok := EaseByName("")
	assert.True(t, ok)
	assert.InDelta(t, 0.4, fn(0.4), 1e-9)

	_, ok = EaseByName("bogus")
	assert.False(t, ok)
}
