package tend

import "time"

// Config holds configuration for a Runner.
type Config struct {
	// GracePeriod is how long Close waits for a cancelled job to actually
	// terminate before reporting a close timeout.
	GracePeriod time.Duration

	// Debug enables call-stack capture at spawn time. Captured frames are
	// attached to reported events.
	Debug bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		GracePeriod: 100 * time.Millisecond,
	}
}
