package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/relink/pkg/logging"
)

// envPrefix namespaces the environment variables that override settings,
// e.g. RELINK_DEBUG_MODE=true.
const envPrefix = "RELINK_"

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load reads the effective settings: built-in defaults, overlaid with the
// settings file at path when one exists, overlaid with RELINK_* environment
// variables. Missing fields fall back to the defaults.
func Load(path string) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load built-in defaults: %w", err)
	}

	// 2. User settings file, if present
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load settings from %s: %w", path, err)
		}
		logger.Debug().Str("path", path).Msg("Loaded settings file")
	} else {
		logger.Debug().Str("path", path).Msg("No settings file, using defaults")
	}

	// 3. Environment overrides
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return &s, nil
}
