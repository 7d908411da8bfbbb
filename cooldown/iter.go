package cooldown

import "iter"

// Next returns the temperature while time remains, and false once remaining is exactly 0
// The cooldown is its own single-pass iterator, restartable only by Reset
func (c *Cooldown) Next() (float64, bool) {
	t := c.temperature()
	if max(t, 0.0) == 0 {
		return 0, false
	}
	return t, true
}

// All yields temperature readings until the cooldown goes cold
//
//	for t := range cd.All() {
//		draw(t)
//	}
func (c *Cooldown) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for {
			t, ok := c.Next()
			if !ok || !yield(t) {
				return
			}
		}
	}
}
