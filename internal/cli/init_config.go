package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"focustimer/internal/storage"
	"focustimer/internal/ui/preferences"

	"github.com/spf13/cobra"
)

func newInitConfigCommand(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write a settings file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := opts.resolveConfigPath()
			if err != nil {
				return err
			}

			settings := preferences.DefaultSettings()
			settings.SoundsDir = filepath.Join(filepath.Dir(configPath), "sounds")
			if err := storage.SaveSettings(configPath, settings, force); err != nil {
				if errors.Is(err, os.ErrExist) {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing settings file")
	return cmd
}
