package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasklist configuration file
# Values can be overridden by TASKLIST_* environment variables or CLI flags

# Tasks the list starts with (default: Pay Bills, Buy Grocery, Shopping)
# seed_tasks = ["Pay Bills", "Buy Grocery", "Shopping"]

# Layout units per terminal line. Rows are 50 units, the header 100.
line_units = 25

# Use the terminal's alternate screen
alt_screen = true

# Enable mouse clicks on "Add Task" and wheel scrolling
mouse = true

# Log directory (supports ~ expansion and %VAR% on Windows)
log_dir = "~/.tasklist"

# Logging
log_level = "info"      # debug, info, warn, error
log_format = "text"     # text, json, logfmt
log_timestamps = true
log_caller = false
`
}
