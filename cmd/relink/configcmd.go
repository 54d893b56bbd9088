package main

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/paths"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: MsgPathShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), paths.SettingsFile())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgShowShort,
		Long: `Show prints the effective settings: built-in defaults overlaid with the
settings file and RELINK_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			data, err := toml.Marshal(settings)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to render settings")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	return cmd
}
