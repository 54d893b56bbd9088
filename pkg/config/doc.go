// Package config owns relink's persisted settings: the ordered pattern and
// replacer lists plus a format version and debug flag.
//
// Settings load in three layers, later layers overriding earlier ones:
//
//  1. Built-in defaults embedded in the binary (embedded/defaults.toml)
//  2. The user settings file ($XDG_CONFIG_HOME/relink/relink.toml)
//  3. RELINK_* environment variables (e.g. RELINK_DEBUG_MODE=true)
//
// The compiled rule sequence is derived state. It is always rebuilt from
// the string lists by pkg/rules and never persisted.
package config
