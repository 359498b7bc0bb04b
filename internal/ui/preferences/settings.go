package preferences

import (
	"time"

	"focustimer/internal/audio"
	"focustimer/internal/core/model"
)

// Settings defines user preferences read at startup.
type Settings struct {
	FocusMinutes int
	SoundsDir    string
	DefaultTrack audio.Track

	WindowWidth  float32
	WindowHeight float32
}

// DefaultSettings returns default settings for FocusTimer.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes: model.DefaultFocusMinutes,
		DefaultTrack: audio.DefaultTrack,
		WindowWidth:  450,
		WindowHeight: 600,
	}
}

// SessionConfig converts settings to the engine configuration.
func (settings Settings) SessionConfig() model.SessionConfig {
	config := model.DefaultSessionConfig()
	if settings.FocusMinutes > 0 {
		config.FocusMinutes = settings.FocusMinutes
	}
	config.TickInterval = time.Second
	return config
}
