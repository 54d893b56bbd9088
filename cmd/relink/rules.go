package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/paths"
	"github.com/arthur-debert/relink/pkg/rules"
	"github.com/arthur-debert/relink/pkg/style"
	"github.com/arthur-debert/relink/pkg/ui"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: MsgRulesShort,
	}

	cmd.AddCommand(newRulesListCmd())
	cmd.AddCommand(newRulesAddCmd())
	cmd.AddCommand(newRulesRemoveCmd())
	cmd.AddCommand(newRulesCheckCmd())

	return cmd
}

func newRulesListCmd() *cobra.Command {
	var formatStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			format, err := ui.ParseFormat(formatStr)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format value")
			}

			out := cmd.OutOrStdout()
			styled := format.Resolve(os.Stdout) == ui.FormatTerminal

			effective := settings.EffectiveRuleCount()
			if effective == 0 && settings.InertEntryCount() == 0 {
				fmt.Fprintln(out, MsgNoRules)
				return nil
			}

			fmt.Fprintln(out, maybeStyle(styled, style.TitleStyle, MsgEffectiveHeader))
			for i := 0; i < effective; i++ {
				printRule(out, styled, i, settings.Patterns[i], settings.Replacers[i])
			}

			if settings.InertEntryCount() > 0 {
				fmt.Fprintln(out, maybeStyle(styled, style.TitleStyle, MsgInertHeader))
				for i := effective; i < len(settings.Patterns); i++ {
					line := fmt.Sprintf("  %d. %s", i, settings.Patterns[i])
					fmt.Fprintln(out, maybeStyle(styled, style.InertStyle, line))
				}
				for i := effective; i < len(settings.Replacers); i++ {
					line := fmt.Sprintf("  %d. -> %s", i, settings.Replacers[i])
					fmt.Fprintln(out, maybeStyle(styled, style.InertStyle, line))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&formatStr, "format", "auto", MsgFlagFormat)
	return cmd
}

func newRulesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <pattern> <replacer>",
		Short: MsgAddShort,
		Long: `Add appends a pattern/replacer pair to the rule list. The full rule set
is recompiled before anything is written: if the new pattern (or any
stored one) is invalid, the error names the offending index and the
stored settings stay untouched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			patterns := append(slices.Clone(settings.Patterns), args[0])
			replacers := append(slices.Clone(settings.Replacers), args[1])

			if _, err := rules.Compile(patterns, replacers); err != nil {
				return errors.Wrap(err, errors.ErrRulesCompile, "rule not added, stored settings unchanged")
			}

			settings.Patterns = patterns
			settings.Replacers = replacers
			if err := settings.Save(paths.SettingsFile()); err != nil {
				return errors.Wrap(err, errors.ErrConfigSave, "failed to save settings")
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgRuleAdded, len(patterns)-1, args[0], args[1])
			return nil
		},
	}
}

func newRulesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: MsgRemoveShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil || idx < 0 {
				return errors.Newf(errors.ErrInvalidInput, "invalid rule index %q", args[0])
			}

			settings, err := loadSettings()
			if err != nil {
				return err
			}

			if idx >= len(settings.Patterns) && idx >= len(settings.Replacers) {
				return errors.Newf(errors.ErrInvalidInput, "no rule at index %d", idx)
			}

			settings.Patterns = removeAt(settings.Patterns, idx)
			settings.Replacers = removeAt(settings.Replacers, idx)
			if err := settings.Save(paths.SettingsFile()); err != nil {
				return errors.Wrap(err, errors.ErrConfigSave, "failed to save settings")
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgRuleRemoved, idx)
			return nil
		},
	}
}

func newRulesCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: MsgCheckShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			compiled, err := rules.Compile(settings.Patterns, settings.Replacers)
			if err != nil {
				return errors.Wrap(err, errors.ErrRulesCompile, "stored rules do not compile")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgRulesOK, len(compiled))
			if inert := settings.InertEntryCount(); inert > 0 {
				fmt.Fprintf(out, MsgInertEntries, inert)
			}
			return nil
		},
	}
}

func printRule(out io.Writer, styled bool, i int, pattern, replacer string) {
	if styled {
		fmt.Fprintf(out, "  %s %s %s %s\n",
			style.IndexStyle.Render(fmt.Sprintf("%d.", i)),
			style.PatternStyle.Render(pattern),
			style.ArrowStyle.Render("->"),
			style.ReplacerStyle.Render(replacer))
		return
	}
	fmt.Fprintf(out, "  %d. %s -> %s\n", i, pattern, replacer)
}

func maybeStyle(styled bool, s lipgloss.Style, text string) string {
	if styled {
		return s.Render(text)
	}
	return text
}

func removeAt(list []string, i int) []string {
	if i >= len(list) {
		return list
	}
	return append(list[:i], list[i+1:]...)
}
