package config

import (
	"flag"
	"strings"

	"github.com/nibzard/tasklist-go/internal/utils"
)

// parseFlags defines the global flags on fs, parses args and applies the
// flags that were explicitly set. If sources is non-nil, it records
// SourceFlag for every field a flag changed.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("tasklist", flag.ContinueOnError)
	}

	// Bind to locals so unset flags never clobber file or env values.
	seeds := strings.Join(cfg.Seeds(), ",")
	lineUnits := cfg.LineUnits
	altScreen := cfg.AltScreen
	mouse := cfg.Mouse
	logDir := cfg.LogDir
	logLevel := cfg.LogLevel
	logFormat := cfg.LogFormat
	logTimestamps := cfg.LogTimestamps
	logCaller := cfg.LogCaller

	fs.StringVar(&seeds, "seed", seeds, "Comma-separated tasks the list starts with")
	fs.Float64Var(&lineUnits, "line-units", lineUnits, "Layout units per terminal line")
	fs.BoolVar(&altScreen, "alt-screen", altScreen, "Use the terminal's alternate screen")
	fs.BoolVar(&mouse, "mouse", mouse, "Enable mouse clicks and wheel scrolling")
	fs.StringVar(&logDir, "log-dir", logDir, "Log directory")
	fs.StringVar(&logLevel, "log-level", logLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", logFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&logTimestamps, "log-timestamps", logTimestamps, "Show timestamps in logs")
	fs.BoolVar(&logCaller, "log-caller", logCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	flagToSource := map[string]string{
		"seed":           "seed_tasks",
		"line-units":     "line_units",
		"alt-screen":     "alt_screen",
		"mouse":          "mouse",
		"log-dir":        "log_dir",
		"log-level":      "log_level",
		"log-format":     "log_format",
		"log-timestamps": "log_timestamps",
		"log-caller":     "log_caller",
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.SeedTasks = utils.SplitAndTrim(seeds, ",")
		case "line-units":
			cfg.LineUnits = lineUnits
		case "alt-screen":
			cfg.AltScreen = altScreen
		case "mouse":
			cfg.Mouse = mouse
		case "log-dir":
			cfg.LogDir = logDir
		case "log-level":
			cfg.LogLevel = logLevel
		case "log-format":
			cfg.LogFormat = logFormat
		case "log-timestamps":
			cfg.LogTimestamps = logTimestamps
		case "log-caller":
			cfg.LogCaller = logCaller
		}
		if sources == nil {
			return
		}
		if field, ok := flagToSource[f.Name]; ok {
			sources[field] = SourceFlag
		}
	})

	return nil
}
