// Test Type: Integration Test
// Description: The apply command end to end - piped input, file input and
// rule failures

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/relink/pkg/paths"
)

func TestApplyCmd(t *testing.T) {
	t.Run("piped_github_issue_url", func(t *testing.T) {
		setupTestEnv(t)

		out, err := execute(t, "https://github.com/acme/widget/issues/42\n", "apply")
		require.NoError(t, err)
		assert.Equal(t, "[🐈‍⬛🔨 widget#42](https://github.com/acme/widget/issues/42)\n", out)
	})

	t.Run("piped_wikipedia_url", func(t *testing.T) {
		setupTestEnv(t)

		out, err := execute(t, "https://en.wikipedia.org/wiki/Turing_machine\n", "apply")
		require.NoError(t, err)
		assert.Equal(t, "[📖 Turing_machine](https://en.wikipedia.org/wiki/Turing_machine)\n", out)
	})

	t.Run("no_match_passes_through", func(t *testing.T) {
		setupTestEnv(t)

		out, err := execute(t, "plain text, nothing to rewrite\n", "apply")
		require.NoError(t, err)
		assert.Equal(t, "plain text, nothing to rewrite\n", out)
	})

	t.Run("file_argument", func(t *testing.T) {
		setupTestEnv(t)

		input := filepath.Join(t.TempDir(), "paste.txt")
		require.NoError(t, os.WriteFile(input, []byte("https://github.com/acme/widget\n"), 0644))

		out, err := execute(t, "", "apply", input)
		require.NoError(t, err)
		assert.Equal(t, "[🐈‍⬛ widget](https://github.com/acme/widget)\n", out)
	})

	t.Run("missing_file_is_an_error", func(t *testing.T) {
		setupTestEnv(t)

		_, err := execute(t, "", "apply", filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})

	t.Run("custom_rules_from_settings_file", func(t *testing.T) {
		configDir := setupTestEnv(t)
		settings := `
patterns = ['cat']
replacers = ['dog']
settings_format_version = 1
`
		settingsPath := filepath.Join(configDir, paths.SettingsFileName)
		require.NoError(t, os.WriteFile(settingsPath, []byte(settings), 0644))

		out, err := execute(t, "cat cat cat\n", "apply")
		require.NoError(t, err)
		assert.Equal(t, "dog dog dog\n", out)
	})

	t.Run("invalid_stored_pattern_reports_index", func(t *testing.T) {
		configDir := setupTestEnv(t)
		settings := `
patterns = ['ok', '(unclosed']
replacers = ['fine', 'x']
settings_format_version = 1
`
		settingsPath := filepath.Join(configDir, paths.SettingsFileName)
		require.NoError(t, os.WriteFile(settingsPath, []byte(settings), 0644))

		_, err := execute(t, "anything\n", "apply")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index 1")
	})
}
