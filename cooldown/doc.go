// Package cooldown implements a countdown timer value for game loops and
// polling code.
//
// A Cooldown counts down from its duration to zero and past it. Its state is
// two persisted values, the origin instant of the current window and the
// frozen residual used while paused. Everything else is derived on demand
// from the clock:
//
//	fire := cooldown.New(1, cooldown.WithCold(true))
//	for {
//		if wantFire && fire.Cold() {
//			fire.Reset()
//			launch()
//		}
//	}
//
// # Temperature
//
// Temperature is signed seconds until expiry and goes negative once the
// cooldown is overdue. Remaining is temperature clamped to zero. A cooldown
// is cold when its temperature is <= 0 and hot otherwise.
//
// # Pause
//
// Pausing captures the current temperature; starting again re-anchors the
// origin so the countdown continues from the captured value no matter how
// long the pause lasted. Every setter routes to whichever field is live.
//
// # Wrap
//
// A wrapping reset on a cold cooldown carries the overdue time into the new
// window: a Cooldown(10) read 12 seconds in has temperature -2, and
// Reset(ResetWrap(true)) sets it to 8. The overdue time is measured against
// the duration held before the reset, so Reset(ResetTo(4), ResetWrap(true))
// in the same state also yields 8. While hot, wrap is ignored.
//
// # Concurrency
//
// A Cooldown is not internally synchronized; wrap it in external mutual
// exclusion for concurrent mutation.
package cooldown
