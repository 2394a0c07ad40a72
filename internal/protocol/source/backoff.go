package source

import (
	"math"
	"math/rand"
	"time"
)

// Delay returns how long to wait after the given failed attempt (1-based).
// The first retry waits InitialDelay; each later one grows by Multiplier up
// to MaxDelay. With Jitter the delay is scaled into [0.5, 1.5).
func (b BackoffConfig) Delay(failed int, rng *rand.Rand) time.Duration {
	if b.InitialDelay <= 0 {
		return 0
	}
	growth := math.Max(b.Multiplier, 1.0)
	exp := math.Max(float64(failed-1), 0)
	delay := float64(b.InitialDelay) * math.Pow(growth, exp)
	if b.MaxDelay > 0 {
		delay = math.Min(delay, float64(b.MaxDelay))
	}
	if b.Jitter {
		scale := 0.5
		if rng != nil {
			scale += rng.Float64()
		}
		delay *= scale
	}
	return time.Duration(delay)
}
