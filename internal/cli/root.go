// Package cli provides the command-line interface for FocusTimer.
package cli

import (
	"errors"
	"fmt"

	"focustimer/internal/core/session"
	"focustimer/internal/storage"
	"focustimer/internal/ui/preferences"

	"github.com/spf13/cobra"
)

// AppName names the settings directory and the single instance lock.
const AppName = "FocusTimer"

// Function variables for the front ends, allowing them to be mocked in tests.
var (
	launchDesktopFunc  = launchDesktop
	launchTerminalFunc = launchTerminal
)

type options struct {
	configPath string
	minutes    int
	soundsDir  string
}

// NewRootCommand creates the root command. Running it without a
// subcommand opens the desktop window.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "focustimer",
		Short: "Pomodoro style focus timer with a task checklist",
		Long: `FocusTimer counts down a focus block, shows the remaining time on a
progress clock and keeps a small checklist of tasks for the session.

Run without arguments to open the desktop window, or use "focustimer tui"
for the terminal version.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return launchDesktopFunc(settings)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (default <user config dir>/FocusTimer/settings.yaml)")
	flags.IntVar(&opts.minutes, "minutes", 0, "focus time in whole minutes")
	flags.StringVar(&opts.soundsDir, "sounds-dir", "", "directory holding cue and music files")

	root.AddCommand(
		newTUICommand(opts),
		newInitConfigCommand(opts),
	)

	return root
}

// resolveConfigPath returns the --config value or the per-user default.
func (opts *options) resolveConfigPath() (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return storage.ConfigPath(AppName)
}

// load reads the settings file and applies flag overrides.
func (opts *options) load(cmd *cobra.Command) (preferences.Settings, error) {
	configPath, err := opts.resolveConfigPath()
	if err != nil {
		return preferences.Settings{}, err
	}

	settings, err := storage.LoadSettings(configPath)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}

	if cmd.Flags().Changed("minutes") {
		if opts.minutes <= 0 {
			return settings, errors.New("--minutes must be a positive number")
		}
		if int64(opts.minutes) > session.MaxFocusMinutes {
			return settings, fmt.Errorf("--minutes must be at most %d", session.MaxFocusMinutes)
		}
		settings.FocusMinutes = opts.minutes
	}
	if opts.soundsDir != "" {
		settings.SoundsDir = opts.soundsDir
	}
	return settings, nil
}
