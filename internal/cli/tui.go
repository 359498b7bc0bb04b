package cli

import (
	"context"
	"fmt"

	"focustimer/internal/audio"
	"focustimer/internal/core/session"
	"focustimer/internal/core/tasks"
	"focustimer/internal/platform"
	"focustimer/internal/ui/preferences"
	"focustimer/internal/ui/terminal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return launchTerminalFunc(settings)
		},
	}
}

func launchTerminal(settings preferences.Settings) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	config := settings.SessionConfig()
	engine := session.New(config)
	defer engine.Close()

	player := platform.NewExecPlayer(settings.SoundsDir)
	music := audio.NewMusic(ctx, player)
	defer music.Stop()

	model := terminal.New(terminal.Config{
		TickInterval: config.TickInterval,
		DefaultTrack: settings.DefaultTrack,
	}, engine, tasks.NewList(), music)
	engine.Subscribe(audio.NewDispatcher(ctx, player, model.Notifier()).Handle)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
