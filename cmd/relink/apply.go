package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/logging"
	"github.com/arthur-debert/relink/pkg/rules"
	"github.com/arthur-debert/relink/pkg/ui"
)

func newApplyCmd() *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: MsgApplyShort,
		Long: `Apply reads text from the named file, from "-"/piped stdin, and rewrites
it with the configured rules, printing the result to stdout. With no file
and no piped input there is nothing to rewrite and the output is empty.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.apply")

			settings, err := loadSettings()
			if err != nil {
				return err
			}

			compiled, err := rules.Compile(settings.Patterns, settings.Replacers)
			if err != nil {
				return errors.Wrap(err, errors.ErrRulesCompile, "stored rules do not compile")
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			engine := rules.NewEngine(compiled)
			result := engine.ApplyOptional(input)
			logger.Debug().
				Int("rules", engine.Len()).
				Bool("absent", input == nil).
				Msg("Applied rules")

			out := cmd.OutOrStdout()
			if preview {
				fmt.Fprint(out, ui.RenderMarkdown(result, 0))
				return nil
			}
			if result != "" {
				fmt.Fprintln(out, result)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, MsgFlagPreview)
	return cmd
}

// readInput resolves the input text: an explicit file argument, piped
// stdin, or nothing at all. Absent input is reported as nil rather than an
// empty string so the no-op path stays unambiguous.
func readInput(cmd *cobra.Command, args []string) (*string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", args[0])
		}
		text := trimTrailingNewline(string(data))
		return &text, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			// Interactive terminal with nothing piped in
			return nil, nil
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read stdin")
	}
	text := trimTrailingNewline(string(data))
	return &text, nil
}

// trimTrailingNewline drops a single trailing line ending so that
// end-anchored patterns still match text piped from line-oriented tools.
func trimTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
