package cooldown

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolCoercion(t *testing.T) {
	clk := newMock()
	assert.True(t, New(5, WithClock(clk)).Bool())
	assert.False(t, New(0, WithClock(clk)).Bool())
	assert.False(t, New(-1, WithClock(clk)).Bool())
}

func TestIntFloatCoercion(t *testing.T) {
	clk := newMock()
	cd := New(10, WithClock(clk))
	clk.AdvanceSeconds(2.75)

	assert.Equal(t, int64(7), cd.Int())
	assert.InDelta(t, 7.25, cd.Float(), eps)

	clk.AdvanceSeconds(10)
	assert.Equal(t, int64(-2), cd.Int())
	assert.InDelta(t, -2.75, cd.Float(), eps)
}

func TestCompareCooldowns(t *testing.T) {
	clk := newMock()
	a := New(10, WithClock(clk))
	b := New(5, WithClock(clk))

	gt, err := a.Gt(b)
	require.NoError(t, err)
	assert.True(t, gt)

	lt, err := a.Lt(b)
	require.NoError(t, err)
	assert.False(t, lt)

	ok, err := CompareValues(OpGt, a, b)
	require.NoError(t, err)
	assert.True(t, ok)

	// Number on the left, cooldown on the right
	ok, err = CompareValues(OpLt, 7, a)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompareOperators(t *testing.T) {
	clk := newMock()
	cd := New(10, WithClock(clk)).Pause()
	cd.SetTemperature(5)

	tests := []struct {
		op    Op
		other any
		want  bool
	}{
		{OpLt, 5.001, true},
		{OpLe, 5, true},
		{OpEq, 5, true},
		{OpEq, int32(5), true},
		{OpNe, 42, true},
		{OpGt, 4.99, true},
		{OpGe, 5, true},
		{OpGt, "6", false},
		{OpEq, json.Number("5"), true},
		{OpGe, true, true},
	}

	for _, tt := range tests {
		got, err := cd.Compare(tt.op, tt.other)
		require.NoError(t, err, "%s %v", tt.op, tt.other)
		assert.Equal(t, tt.want, got, "%s %v", tt.op, tt.other)
	}

	le, err := cd.Le(5)
	require.NoError(t, err)
	assert.True(t, le)

	eq, err := cd.Eq(5.0)
	require.NoError(t, err)
	assert.True(t, eq)

	ne, err := cd.Ne(5.0)
	require.NoError(t, err)
	assert.False(t, ne)

	ge, err := cd.Ge(6)
	require.NoError(t, err)
	assert.False(t, ge)
}

func TestCmp(t *testing.T) {
	clk := newMock()
	cd := New(3, WithClock(clk))

	for other, want := range map[float64]int{2: 1, 3: 0, 4: -1} {
		got, err := cd.Cmp(other)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cmp against %v", other)
	}

	_, err := cd.Cmp("three")
	assert.ErrorIs(t, err, ErrConversion)
}

func TestCompareConversionError(t *testing.T) {
	cd := New(3, WithClock(newMock()))

	for _, bad := range []any{"x", nil, struct{}{}, map[string]int{}} {
		_, err := cd.Compare(OpLt, bad)
		assert.ErrorIs(t, err, ErrConversion, "%#v", bad)
	}

	_, err := CompareValues(OpEq, "nope", cd)
	assert.ErrorIs(t, err, ErrConversion)

	_, err = cd.Compare(Op(42), 1)
	assert.ErrorIs(t, err, ErrUnknownOp)
}

type constant float64

func (c constant) Float() float64 { return float64(c) }

func TestToFloat(t *testing.T) {
	clk := newMock()
	cd := New(4, WithClock(clk))

	f, err := ToFloat(cd)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, f, eps)

	f, err = ToFloat(constant(2.5))
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	f, err = ToFloat(uint8(9))
	require.NoError(t, err)
	assert.Equal(t, 9.0, f)
}

func TestParseOp(t *testing.T) {
	for _, sym := range []string{"<", "<=", "==", "!=", ">", ">="} {
		op, err := ParseOp(sym)
		require.NoError(t, err)
		assert.Equal(t, sym, op.String())
	}

	_, err := ParseOp("<>")
	assert.ErrorIs(t, err, ErrUnknownOp)
	assert.Equal(t, "Op(9)", Op(9).String())
}

func TestNext(t *testing.T) {
	clk := newMock()
	cd := New(1, WithClock(clk))

	v, ok := cd.Next()
	assert.True(t, ok)
	assert.InDelta(t, 1.0, v, eps)

	clk.AdvanceSeconds(0.75)
	v, ok = cd.Next()
	assert.True(t, ok)
	assert.InDelta(t, 0.25, v, eps)

	clk.AdvanceSeconds(0.25)
	_, ok = cd.Next()
	assert.False(t, ok)

	// Exhausted until reset
	_, ok = cd.Next()
	assert.False(t, ok)

	cd.Reset()
	_, ok = cd.Next()
	assert.True(t, ok)
}

func TestAllMock(t *testing.T) {
	clk := newMock()
	cd := New(1, WithClock(clk))

	var readings []float64
	for v := range cd.All() {
		readings = append(readings, v)
		clk.AdvanceSeconds(0.25)
	}

	require.Len(t, readings, 4)
	assert.InDeltaSlice(t, []float64{1, 0.75, 0.5, 0.25}, readings, eps)
}

func TestAllRealTime(t *testing.T) {
	cd := New(0.05)

	var readings []float64
	start := time.Now()
	for v := range cd.All() {
		readings = append(readings, v)
		if time.Since(start) > time.Second {
			t.Fatal("iteration did not stop")
		}
	}

	require.NotEmpty(t, readings)
	for i := 1; i < len(readings); i++ {
		assert.LessOrEqual(t, readings[i], readings[i-1])
	}
	assert.True(t, cd.Cold())
}

func TestAllEarlyBreak(t *testing.T) {
	cd := New(10, WithClock(newMock()))

	n := 0
	for range cd.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}
