package vmath

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrArity       = errors.New("wrong number of arguments")
	ErrUnknownFunc = errors.New("unknown function")
)

type helper struct {
	arity int
	fn    func(args []float64) float64
}

var helpers = map[string]helper{
	"lerp":    {3, func(a []float64) float64 { return Lerp(a[0], a[1], a[2]) }},
	"invlerp": {3, func(a []float64) float64 { return InvLerp(a[0], a[1], a[2]) }},
	"remap":   {5, func(a []float64) float64 { return Remap(a[0], a[1], a[2], a[3], a[4]) }},
}

// Arity returns the argument count required by a named helper
func Arity(name string) (int, bool) {
	h, ok := helpers[name]
	return h.arity, ok
}

// Call invokes a helper by name for callers that only know the arguments at runtime
// The argument count is checked before anything is computed
func Call(name string, args ...float64) (float64, error) {
	h, ok := helpers[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFunc, name)
	}
	if len(args) != h.arity {
		return 0, fmt.Errorf("%s: %w: expected %d, got %d", name, ErrArity, h.arity, len(args))
	}
	return h.fn(args), nil
}
