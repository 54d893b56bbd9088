package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/relink/internal/version"
	"github.com/arthur-debert/relink/pkg/config"
	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/logging"
	"github.com/arthur-debert/relink/pkg/paths"
)

// NewRootCmd builds the relink command tree. Each call returns a fresh
// tree so tests can execute commands in isolation.
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "relink",
		Short: MsgRootShort,
		Long: `relink rewrites text by applying an ordered list of regular-expression
pattern/replacer rules. The built-in rules turn pasted GitHub and
Wikipedia URLs into short annotated markdown links; edit the rules to
rewrite anything you paste often.

Pipe text through "relink apply", or point it at a file. Rules live in
a settings file that "relink rules" edits and "relink config" locates.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadSettings reads the effective settings and honors the stored
// debug_mode flag by raising the log level floor before returning.
func loadSettings() (*config.Settings, error) {
	settings, err := config.Load(paths.SettingsFile())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load settings")
	}
	if settings.DebugMode {
		logging.EnsureDebugLevel()
	}
	return settings, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "relink version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
