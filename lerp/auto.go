package lerp

import (
	"fmt"

	"github.com/spf13/cast"
)

// Auto holds an attribute that is either a constant or a running Thing
// Get reads it the same way in both cases
type Auto struct {
	constant float64
	thing    *Thing
	opts     []Option
}

// NewAuto creates a holder; opts apply to Things built from triples
func NewAuto(opts ...Option) *Auto {
	return &Auto{opts: opts}
}

// Set accepts a number, a *Thing, or a (from, to, seconds) triple
func (a *Auto) Set(v any) error {
	switch x := v.(type) {
	case *Thing:
		if x == nil {
			return fmt.Errorf("%w: nil *Thing", ErrUnsupportedValue)
		}
		a.thing = x
		return nil
	case []float64:
		if len(x) != 3 {
			return fmt.Errorf("%w: triple has %d elements", ErrUnsupportedValue, len(x))
		}
		a.thing = New(x[0], x[1], x[2], a.opts...)
		return nil
	case [3]float64:
		a.thing = New(x[0], x[1], x[2], a.opts...)
		return nil
	case string, nil:
		return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
	a.constant = f
	a.thing = nil
	return nil
}

// Get returns the constant, or the Thing's current value
func (a *Auto) Get() float64 {
	if a.thing != nil {
		return a.thing.Value()
	}
	return a.constant
}

// Thing returns the running gauge, nil when holding a constant
func (a *Auto) Thing() *Thing {
	return a.thing
}
