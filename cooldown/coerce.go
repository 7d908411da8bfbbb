package cooldown

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/spf13/cast"
)

// Sentinel errors
var (
	ErrConversion    = errors.New("can't convert object to number")
	ErrAboveDuration = errors.New("value larger than duration, use Reset() instead")
	ErrUnknownOp     = errors.New("unknown comparison operator")
)

// Floater is anything that reads as a number, a Cooldown reads as its temperature
type Floater interface {
	Float() float64
}

// Bool reports true while the cooldown is hot
func (c *Cooldown) Bool() bool {
	return !c.isCold()
}

// Int returns the temperature truncated toward zero
func (c *Cooldown) Int() int64 {
	return int64(c.temperature())
}

// Float returns the temperature
func (c *Cooldown) Float() float64 {
	return c.temperature()
}

// ToFloat interprets v as a number
// Cooldowns and other Floaters contribute their Float value; everything else
// goes through numeric casting, and failures wrap ErrConversion
func ToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: <nil>", ErrConversion)
	case *Cooldown:
		if x == nil {
			return 0, fmt.Errorf("%w: nil cooldown", ErrConversion)
		}
		return x.temperature(), nil
	case Cooldown:
		return x.temperature(), nil
	case Floater:
		return x.Float(), nil
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %T: %v", ErrConversion, v, err)
	}
	return f, nil
}

// Op is a comparison operator
type Op int

const (
	OpLt Op = iota
	OpLe
	OpEq
	OpNe
	OpGt
	OpGe
)

var opSymbols = [...]string{"<", "<=", "==", "!=", ">", ">="}

// String returns the operator symbol
func (op Op) String() string {
	if op < 0 || int(op) >= len(opSymbols) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opSymbols[op]
}

// ParseOp resolves an operator symbol
func ParseOp(s string) (Op, error) {
	for i, sym := range opSymbols {
		if sym == s {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

func (op Op) apply(a, b float64) (bool, error) {
	switch op {
	case OpLt:
		return a < b, nil
	case OpLe:
		return a <= b, nil
	case OpEq:
		return a == b, nil
	case OpNe:
		return a != b, nil
	case OpGt:
		return a > b, nil
	case OpGe:
		return a >= b, nil
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownOp, op)
}

// CompareValues coerces both operands to numbers and compares them
// Either side may be a Cooldown, which reads as its temperature
func CompareValues(op Op, a, b any) (bool, error) {
	x, err := ToFloat(a)
	if err != nil {
		return false, err
	}
	y, err := ToFloat(b)
	if err != nil {
		return false, err
	}
	return op.apply(x, y)
}

// Compare compares the temperature against other
func (c *Cooldown) Compare(op Op, other any) (bool, error) {
	y, err := ToFloat(other)
	if err != nil {
		return false, err
	}
	return op.apply(c.temperature(), y)
}

// Cmp three-way compares the temperature against other
func (c *Cooldown) Cmp(other any) (int, error) {
	y, err := ToFloat(other)
	if err != nil {
		return 0, err
	}
	return cmp.Compare(c.temperature(), y), nil
}

func (c *Cooldown) Lt(other any) (bool, error) { return c.Compare(OpLt, other) }
func (c *Cooldown) Le(other any) (bool, error) { return c.Compare(OpLe, other) }
func (c *Cooldown) Eq(other any) (bool, error) { return c.Compare(OpEq, other) }
func (c *Cooldown) Ne(other any) (bool, error) { return c.Compare(OpNe, other) }
func (c *Cooldown) Gt(other any) (bool, error) { return c.Compare(OpGt, other) }
func (c *Cooldown) Ge(other any) (bool, error) { return c.Compare(OpGe, other) }
