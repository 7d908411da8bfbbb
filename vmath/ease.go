package vmath

import (
	"sort"
	"strings"
)

// EaseFunc reshapes a progress value t in [0, 1]
type EaseFunc func(t float64) float64

// --- Easing curves ---

func Linear(t float64) float64  { return t }
func InQuad(t float64) float64  { return t * t }
func OutQuad(t float64) float64 { return t * (2 - t) }
func InCubic(t float64) float64 { return t * t * t }

func OutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// SmoothStep is the Hermite curve 3t²-2t³
func SmoothStep(t float64) float64 {
	return t * t * (3 - 2*t)
}

var easings = map[string]EaseFunc{
	"linear":      Linear,
	"in_quad":     InQuad,
	"out_quad":    OutQuad,
	"in_out_quad": InOutQuad,
	"in_cubic":    InCubic,
	"out_cubic":   OutCubic,
	"smoothstep":  SmoothStep,
}

// EaseByName resolves an easing curve by its profile name
// Empty name resolves to Linear
func EaseByName(name string) (EaseFunc, bool) {
	if name == "" {
		return Linear, true
	}
	fn, ok := easings[strings.ToLower(name)]
	return fn, ok
}

// EaseNames returns the registered easing names in sorted order
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
