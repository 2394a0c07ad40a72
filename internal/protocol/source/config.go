package source

import "time"

// BackoffConfig defines retry backoff behavior.
type BackoffConfig struct {
	InitialDelay time.Duration
	Multiplier   float64
	MaxDelay     time.Duration
	Jitter       bool
}

// FetchConfig controls remote loading.
type FetchConfig struct {
	Timeout     time.Duration
	MaxAttempts int
	Backoff     BackoffConfig
}

// DefaultFetchConfig returns the defaults used when no config file sets them.
func DefaultFetchConfig() FetchConfig {
	return FetchConfig{
		Timeout:     30 * time.Second,
		MaxAttempts: 3,
		Backoff: BackoffConfig{
			InitialDelay: 500 * time.Millisecond,
			Multiplier:   2.0,
			MaxDelay:     5 * time.Second,
			Jitter:       true,
		},
	}
}
