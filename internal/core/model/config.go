package model

import "time"

const (
	// DefaultFocusMinutes is the focus length a fresh engine starts with.
	DefaultFocusMinutes = 25
	// DefaultTickInterval is the countdown step.
	DefaultTickInterval = time.Second
)

// SessionConfig contains runtime settings for the focus session engine.
type SessionConfig struct {
	FocusMinutes int
	TickInterval time.Duration
}

// DefaultSessionConfig returns the configuration used when nothing else is set.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		FocusMinutes: DefaultFocusMinutes,
		TickInterval: DefaultTickInterval,
	}
}

// FocusDuration returns the configured focus length.
func (config SessionConfig) FocusDuration() time.Duration {
	return time.Duration(config.FocusMinutes) * time.Minute
}
