// Package audio synthesizes the sandbox sound cues on top of beep.
package audio

// Config holds audio settings
type Config struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
}

// DefaultConfig returns the default audio configuration
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		SampleRate: 44100,
		Volume:     0.5,
	}
}
