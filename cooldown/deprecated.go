package cooldown

import "fmt"

// SetTo sets the temperature, refusing values above the duration
//
// Deprecated: use SetTemperature, or Reset to grow the timer.
func (c *Cooldown) SetTo(v float64) error {
	c.logger().Warn().
		Bool("deprecated", true).
		Str("method", "SetTo").
		Str("use", "SetTemperature").
		Msg("deprecation warning")

	if v > c.duration {
		return fmt.Errorf("set to %g over duration %g: %w", v, c.duration, ErrAboveDuration)
	}
	c.setTemperature(v)
	return nil
}

// SetCold makes the cooldown expire now
//
// Deprecated: use SetTemperature(0).
func (c *Cooldown) SetCold() {
	c.logger().Warn().
		Bool("deprecated", true).
		Str("method", "SetCold").
		Str("use", "SetTemperature").
		Msg("deprecation warning")

	c.setCold(true)
}
