package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"focustimer/internal/audio"
	"focustimer/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const (
	settingsFileName = "settings.yaml"
	soundsDirName    = "sounds"
)

type yamlSettings struct {
	FocusMinutes int     `yaml:"focus_minutes"`
	SoundsDir    string  `yaml:"sounds_dir"`
	DefaultTrack string  `yaml:"default_track"`
	WindowWidth  float32 `yaml:"window_width"`
	WindowHeight float32 `yaml:"window_height"`
}

// ConfigPath returns the settings file location for appName.
func ConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from the YAML file at configPath.
// A missing file yields defaults. Fields with invalid values keep their default.
// An empty sounds directory resolves to a "sounds" folder next to the file.
func LoadSettings(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	settings.SoundsDir = filepath.Join(filepath.Dir(configPath), soundsDirName)

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes preferences to configPath. An existing file is kept
// unless overwrite is set.
func SaveSettings(configPath string, settings preferences.Settings, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("settings file %s: %w", configPath, os.ErrExist)
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		FocusMinutes: settings.FocusMinutes,
		SoundsDir:    settings.SoundsDir,
		DefaultTrack: string(settings.DefaultTrack),
		WindowWidth:  settings.WindowWidth,
		WindowHeight: settings.WindowHeight,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes > 0 {
		settings.FocusMinutes = fileData.FocusMinutes
	}
	if fileData.SoundsDir != "" {
		settings.SoundsDir = fileData.SoundsDir
	}
	if audio.ValidTrack(fileData.DefaultTrack) {
		settings.DefaultTrack = audio.Track(fileData.DefaultTrack)
	}
	if fileData.WindowWidth >= 200 {
		settings.WindowWidth = fileData.WindowWidth
	}
	if fileData.WindowHeight >= 200 {
		settings.WindowHeight = fileData.WindowHeight
	}
}
