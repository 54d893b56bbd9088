// Test Type: Integration Test
// Description: The rules subcommands - list, add, remove, check - and
// their persistence behavior

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/relink/pkg/paths"
)

func TestRulesListCmd(t *testing.T) {
	t.Run("lists_default_rules", func(t *testing.T) {
		setupTestEnv(t)

		out, err := execute(t, "", "rules", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "github")
		assert.Contains(t, out, "wikipedia")
	})

	t.Run("marks_inert_trailing_entries", func(t *testing.T) {
		configDir := setupTestEnv(t)
		settings := `
patterns = ['a', 'b', 'c']
replacers = ['1']
settings_format_version = 1
`
		settingsPath := filepath.Join(configDir, paths.SettingsFileName)
		require.NoError(t, os.WriteFile(settingsPath, []byte(settings), 0644))

		out, err := execute(t, "", "rules", "list")
		require.NoError(t, err)
		assert.Contains(t, out, MsgInertHeader)
		assert.Contains(t, out, "b")
		assert.Contains(t, out, "c")
	})

	t.Run("honors_explicit_text_format", func(t *testing.T) {
		setupTestEnv(t)

		out, err := execute(t, "", "rules", "list", "--format", "text")
		require.NoError(t, err)
		assert.Contains(t, out, "github")
		assert.Contains(t, out, "->")
	})

	t.Run("rejects_unknown_format", func(t *testing.T) {
		setupTestEnv(t)

		_, err := execute(t, "", "rules", "list", "--format", "bogus")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "format")
	})
}

func TestRulesAddCmd(t *testing.T) {
	t.Run("appends_and_persists", func(t *testing.T) {
		configDir := setupTestEnv(t)

		out, err := execute(t, "", "rules", "add", "foo", "bar")
		require.NoError(t, err)
		assert.Contains(t, out, "Added rule 4")

		// Persisted: the file exists and the new rule is live for apply
		_, err = os.Stat(filepath.Join(configDir, paths.SettingsFileName))
		require.NoError(t, err)

		applied, err := execute(t, "foo foo\n", "apply")
		require.NoError(t, err)
		assert.Equal(t, "bar bar\n", applied)
	})

	t.Run("invalid_pattern_rejected_and_nothing_persisted", func(t *testing.T) {
		configDir := setupTestEnv(t)

		_, err := execute(t, "", "rules", "add", "(unclosed", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index 4")

		// The settings file was never written
		_, statErr := os.Stat(filepath.Join(configDir, paths.SettingsFileName))
		assert.True(t, os.IsNotExist(statErr))

		// Previous behavior stays in effect
		applied, err := execute(t, "https://github.com/acme/widget/issues/42\n", "apply")
		require.NoError(t, err)
		assert.Contains(t, applied, "widget#42")
	})
}

func TestRulesRemoveCmd(t *testing.T) {
	t.Run("removes_and_persists", func(t *testing.T) {
		setupTestEnv(t)

		_, err := execute(t, "", "rules", "add", "foo", "bar")
		require.NoError(t, err)

		out, err := execute(t, "", "rules", "remove", "4")
		require.NoError(t, err)
		assert.Contains(t, out, "Removed rule 4")

		applied, err := execute(t, "foo\n", "apply")
		require.NoError(t, err)
		assert.Equal(t, "foo\n", applied)
	})

	t.Run("rejects_bad_indices", func(t *testing.T) {
		setupTestEnv(t)

		_, err := execute(t, "", "rules", "remove", "notanumber")
		assert.Error(t, err)

		_, err = execute(t, "", "rules", "remove", "-1")
		assert.Error(t, err)

		_, err = execute(t, "", "rules", "remove", "99")
		assert.Error(t, err)
	})
}

func TestRulesCheckCmd(t *testing.T) {
	t.Run("default_rules_compile", func(t *testing.T) {
		setupTestEnv(t)

		out, err := execute(t, "", "rules", "check")
		require.NoError(t, err)
		assert.Contains(t, out, "4 rules compile cleanly")
	})

	t.Run("reports_broken_stored_pattern", func(t *testing.T) {
		configDir := setupTestEnv(t)
		settings := `
patterns = ['(unclosed']
replacers = ['x']
settings_format_version = 1
`
		settingsPath := filepath.Join(configDir, paths.SettingsFileName)
		require.NoError(t, os.WriteFile(settingsPath, []byte(settings), 0644))

		_, err := execute(t, "", "rules", "check")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index 0")
	})

	t.Run("counts_inert_entries", func(t *testing.T) {
		configDir := setupTestEnv(t)
		settings := `
patterns = ['a']
replacers = ['1', '2', '3']
settings_format_version = 1
`
		settingsPath := filepath.Join(configDir, paths.SettingsFileName)
		require.NoError(t, os.WriteFile(settingsPath, []byte(settings), 0644))

		out, err := execute(t, "", "rules", "check")
		require.NoError(t, err)
		assert.Contains(t, out, "1 rules compile cleanly")
		assert.Contains(t, out, "2 trailing entries")
	})

	t.Run("debug_mode_setting_raises_log_level", func(t *testing.T) {
		configDir := setupTestEnv(t)
		settings := `
debug_mode = true
settings_format_version = 1
`
		settingsPath := filepath.Join(configDir, paths.SettingsFileName)
		require.NoError(t, os.WriteFile(settingsPath, []byte(settings), 0644))

		_, err := execute(t, "", "rules", "check")
		require.NoError(t, err)
		assert.LessOrEqual(t, zerolog.GlobalLevel(), zerolog.DebugLevel)
	})
}

func TestConfigCmd(t *testing.T) {
	t.Run("path", func(t *testing.T) {
		configDir := setupTestEnv(t)

		out, err := execute(t, "", "config", "path")
		require.NoError(t, err)
		assert.Contains(t, out, configDir)
		assert.Contains(t, out, paths.SettingsFileName)
	})

	t.Run("show_prints_effective_settings", func(t *testing.T) {
		setupTestEnv(t)

		out, err := execute(t, "", "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "settings_format_version = 1")
		assert.Contains(t, out, "patterns")
		assert.Contains(t, out, "wikipedia")
	})
}
