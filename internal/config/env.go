package config

import (
	"os"
	"strconv"

	"github.com/nibzard/tasklist-go/internal/utils"
)

// loadFromEnv overrides config from TASKLIST_* environment variables.
// If sources is non-nil, it records SourceEnv for every field it sets.
// Unparseable numbers are ignored.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	set := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v, ok := os.LookupEnv("TASKLIST_SEED_TASKS"); ok {
		cfg.SeedTasks = utils.SplitAndTrim(v, ",")
		set("seed_tasks")
	}
	if v := os.Getenv("TASKLIST_LINE_UNITS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.LineUnits = f
			set("line_units")
		}
	}
	if v := os.Getenv("TASKLIST_ALT_SCREEN"); v != "" {
		cfg.AltScreen = utils.BoolFromString(v)
		set("alt_screen")
	}
	if v := os.Getenv("TASKLIST_MOUSE"); v != "" {
		cfg.Mouse = utils.BoolFromString(v)
		set("mouse")
	}

	// Logging configuration
	if v := os.Getenv("TASKLIST_LOG_DIR"); v != "" {
		cfg.LogDir = v
		set("log_dir")
	}
	if v := os.Getenv("TASKLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		set("log_level")
	}
	if v := os.Getenv("TASKLIST_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		set("log_format")
	}
	if v := os.Getenv("TASKLIST_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = utils.BoolFromString(v)
		set("log_timestamps")
	}
	if v := os.Getenv("TASKLIST_LOG_CALLER"); v != "" {
		cfg.LogCaller = utils.BoolFromString(v)
		set("log_caller")
	}
}
