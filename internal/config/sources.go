package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

const configFileName = "tasklist.toml"

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	names := []string{configFileName, "." + configFileName}
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// findUserConfigFile looks for a user-level config file.
// Checks ~/.tasklist/tasklist.toml first, then falls back to OS-specific
// config directories.
func findUserConfigFile() string {
	home, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := filepath.Join(home, ".tasklist", configFileName)
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	if cfgDir := osUserConfigDir(); cfgDir != "" {
		userConfigPath := filepath.Join(cfgDir, "tasklist", configFileName)
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	return ""
}

// osUserConfigDir returns the OS-specific user config directory.
// Returns empty string if the directory cannot be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return appdata
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	case "linux", "openbsd", "freebsd", "netbsd":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.SeedTasks = nil
	cfg.LineUnits = DefaultLineUnits
	cfg.AltScreen = DefaultAltScreen
	cfg.Mouse = DefaultMouse
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = DefaultLogTimestamps
	cfg.LogCaller = false
}

// configFields returns the list of configurable field names for source tracking.
// The names match the TOML keys.
func configFields() []string {
	return []string{
		"seed_tasks",
		"line_units",
		"alt_screen",
		"mouse",
		"log_dir",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return configFields()
}

// Source returns where the named field got its value.
func (cws *ConfigWithSources) Source(field string) ConfigSource {
	if cws == nil || cws.Sources == nil {
		return SourceDefault
	}
	if s, ok := cws.Sources[field]; ok {
		return s
	}
	return SourceDefault
}

// Value returns the display form of the named field, or false if the
// field is unknown.
func (c *Config) Value(field string) (string, bool) {
	switch field {
	case "seed_tasks":
		return fmt.Sprintf("%q", c.Seeds()), true
	case "line_units":
		return strconv.FormatFloat(c.LineUnits, 'g', -1, 64), true
	case "alt_screen":
		return strconv.FormatBool(c.AltScreen), true
	case "mouse":
		return strconv.FormatBool(c.Mouse), true
	case "log_dir":
		return c.LogDir, true
	case "log_level":
		return c.LogLevel, true
	case "log_format":
		return c.LogFormat, true
	case "log_timestamps":
		return strconv.FormatBool(c.LogTimestamps), true
	case "log_caller":
		return strconv.FormatBool(c.LogCaller), true
	default:
		return "", false
	}
}
