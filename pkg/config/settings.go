package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed embedded/defaults.toml
var defaultSettings []byte

// Settings is the persisted rule-set configuration. Patterns and Replacers
// are parallel ordered lists; only the first min(len(Patterns),
// len(Replacers)) pairs are ever compiled into rules. Trailing entries in
// the longer list stay in storage but are inert.
type Settings struct {
	Patterns              []string `koanf:"patterns" toml:"patterns"`
	Replacers             []string `koanf:"replacers" toml:"replacers"`
	SettingsFormatVersion int      `koanf:"settings_format_version" toml:"settings_format_version"`
	DebugMode             bool     `koanf:"debug_mode" toml:"debug_mode"`
}

// EffectiveRuleCount returns the number of rules that would actually be
// compiled from this configuration.
func (s *Settings) EffectiveRuleCount() int {
	return min(len(s.Patterns), len(s.Replacers))
}

// InertEntryCount returns how many trailing entries of the longer list have
// no partner and are therefore never compiled.
func (s *Settings) InertEntryCount() int {
	return max(len(s.Patterns), len(s.Replacers)) - s.EffectiveRuleCount()
}

// Default returns the built-in settings: four pattern/replacer pairs that
// rewrite GitHub issue, pull-request and repository URLs and Wikipedia
// article URLs into annotated markdown links.
func Default() *Settings {
	var s Settings
	// The embedded defaults are compiled into the binary and verified by
	// tests, so a parse failure here is a build defect.
	if err := toml.Unmarshal(defaultSettings, &s); err != nil {
		panic(fmt.Sprintf("embedded defaults are malformed: %v", err))
	}
	return &s
}

// Save writes the settings to path as TOML, creating parent directories as
// needed. The compiled rule sequence is derived state and is never
// persisted.
func (s *Settings) Save(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings to %s: %w", path, err)
	}
	return nil
}
