package lerp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoConstant(t *testing.T) {
	a := NewAuto()
	require.NoError(t, a.Set(42))
	assert.Equal(t, 42.0, a.Get())
	assert.Nil(t, a.Thing())

	require.NoError(t, a.Set(1.5))
	assert.Equal(t, 1.5, a.Get())
}

func TestAutoTriple(t *testing.T) {
	clk := newMock()
	a := NewAuto(WithClock(clk))

	require.NoError(t, a.Set([]float64{0, 10, 1}))
	assert.InDelta(t, 0.0, a.Get(), eps)
	clk.AdvanceSeconds(0.1)
	assert.InDelta(t, 1.0, a.Get(), eps)
	clk.AdvanceSeconds(1)
	assert.Equal(t, 10.0, a.Get())

	require.NoError(t, a.Set([3]float64{0, 360, 10}))
	clk.AdvanceSeconds(5)
	assert.InDelta(t, 180.0, a.Get(), eps)
}

func TestAutoThing(t *testing.T) {
	clk := newMock()
	th := New(10, 20, 2, WithClock(clk))

	a := NewAuto()
	require.NoError(t, a.Set(th))
	assert.Same(t, th, a.Thing())
	clk.AdvanceSeconds(1)
	assert.InDelta(t, 15.0, a.Get(), eps)

	// Back to a constant drops the Thing
	require.NoError(t, a.Set(3))
	assert.Nil(t, a.Thing())
	assert.Equal(t, 3.0, a.Get())
}

func TestAutoRejects(t *testing.T) {
	a := NewAuto()
	for _, bad := range []any{"7", nil, []float64{1, 2}, (*Thing)(nil), struct{}{}} {
		assert.ErrorIs(t, a.Set(bad), ErrUnsupportedValue, "%#v", bad)
	}
}
