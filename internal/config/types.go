// Package config handles configuration loading and defaults.
package config

import (
	"github.com/nibzard/tasklist-go/internal/tasks"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, in load order.
	Files []string
}

// Default values.
const (
	DefaultLineUnits     = 25.0
	DefaultLogDir        = "~/.tasklist"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultAltScreen     = true
	DefaultMouse         = true
	DefaultLogTimestamps = true
)

// Config holds the full configuration for tasklist.
type Config struct {
	// Tasks the list starts with. Nil means the built-in seeds.
	SeedTasks []string `toml:"seed_tasks"`

	// Layout units per terminal line. Rows are 50 units and the header
	// is 100 units tall, so the default of 25 gives 2-line rows and a
	// 4-line header.
	LineUnits float64 `toml:"line_units"`

	// Terminal
	AltScreen bool `toml:"alt_screen"`
	Mouse     bool `toml:"mouse"`

	// Logging configuration
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// Seeds returns the tasks a new list starts with.
func (c *Config) Seeds() []string {
	if c == nil || c.SeedTasks == nil {
		return tasks.DefaultSeeds()
	}
	out := make([]string, len(c.SeedTasks))
	copy(out, c.SeedTasks)
	return out
}
