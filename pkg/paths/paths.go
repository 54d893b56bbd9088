// Package paths provides centralized path handling for relink.
// Locations follow the XDG Base Directory specification via adrg/xdg,
// with RELINK_* environment overrides for tests and unusual setups.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the directory holding the settings file
	EnvConfigDir = "RELINK_CONFIG_DIR"

	// EnvStateDir overrides the directory holding mutable state (logs)
	EnvStateDir = "RELINK_STATE_DIR"
)

// Fixed names within the relink directories. These are not
// user-configurable; user-configurable values belong in pkg/config.
const (
	// AppDirName is the directory name for relink-specific files
	AppDirName = "relink"

	// SettingsFileName is the name of the persisted settings file
	SettingsFileName = "relink.toml"

	// LogFileName is the name of the log file
	LogFileName = "relink.log"
)

// ConfigDir returns the directory holding the settings file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// SettingsFile returns the full path of the persisted settings file.
func SettingsFile() string {
	return filepath.Join(ConfigDir(), SettingsFileName)
}

// StateDir returns the directory for mutable state such as logs.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the full path of the log file.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}
