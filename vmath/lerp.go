// Package vmath holds the scalar interpolation helpers and easing curves.
package vmath

// --- Interpolation ---

// Lerp performs linear interpolation between a and b
// t is not clamped: values outside [0, 1] extrapolate
func Lerp(a, b, t float64) float64 {
	return t*(b-a) + a
}

// InvLerp returns where v lies between a and b as a fraction
// a == b divides by zero and yields ±Inf or NaN
func InvLerp(a, b, v float64) float64 {
	return (v - a) / (b - a)
}

// Remap maps v from range [a0, a1] onto range [b0, b1]
func Remap(a0, a1, b0, b1, v float64) float64 {
	return Lerp(b0, b1, InvLerp(a0, a1, v))
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
