// Package cmd implements the CLI command structure for tasklist.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nibzard/tasklist-go/internal/config"
	"github.com/nibzard/tasklist-go/internal/logging"
	"github.com/nibzard/tasklist-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

const (
	defaultPrintWidth  = 80
	defaultPrintHeight = 24
)

// Run executes the tasklist CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(os.Stdout)
	}

	// If no args or first arg is a flag, use "run" as default
	subcommand := "run"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		if !strings.HasPrefix(remainingArgs[0], "-") {
			subcommand = remainingArgs[0]
			remainingArgs = remainingArgs[1:]
		}
	}

	switch subcommand {
	case "run":
		return runCommand(ctx, cfg, remainingArgs)
	case "print":
		return printCommand(cfg, remainingArgs, os.Stdout)
	case "config":
		return configCommand(cws, remainingArgs, os.Stdout)
	case "tail":
		return tailCommand(ctx, cfg, remainingArgs, os.Stdout)
	case "version":
		return versionCommand(os.Stdout)
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// runCommand opens the to-do list screen.
func runCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist run", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if remaining := fs.Args(); len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}

	runLog, err := logging.NewRunLogger(cfg.LogDir, cfg.ProjectRoot)
	if err != nil {
		return fmt.Errorf("creating run log: %w", err)
	}
	defer runLog.Close()

	logger := runLog.Logger(logOptions(cfg))
	logger.Info("starting",
		"version", Version,
		"run_id", runLog.RunID,
		"project", cfg.ProjectRoot,
	)

	if err := ui.RunTUI(ctx, cfg, logger); err != nil {
		logger.Error("screen exited", "err", err)
		return err
	}

	logger.Info("finished")
	return nil
}

// printCommand renders a single frame of a fresh screen to w.
func printCommand(cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("tasklist print", flag.ContinueOnError)
	width := fs.Int("width", defaultPrintWidth, "Frame width in columns")
	height := fs.Int("height", defaultPrintHeight, "Frame height in lines")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if remaining := fs.Args(); len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("frame size must be positive, got %dx%d", *width, *height)
	}

	fmt.Fprintln(w, ui.Snapshot(cfg, *width, *height))
	return nil
}

// configCommand shows the effective configuration and where each value came from.
func configCommand(cws *config.ConfigWithSources, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("tasklist config", flag.ContinueOnError)
	example := fs.Bool("example", false, "Print an example config file")
	schema := fs.Bool("schema", false, "Print the config file JSON schema")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if remaining := fs.Args(); len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}

	switch {
	case *example:
		fmt.Fprint(w, config.ExampleConfig())
		return nil
	case *schema:
		_, err := w.Write(config.Schema())
		return err
	}

	fmt.Fprintln(w, "Config files:")
	if len(cws.Files) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, path := range cws.Files {
		fmt.Fprintf(w, "  %s\n", path)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Effective configuration:")
	for _, field := range config.Fields() {
		value, _ := cws.Config.Value(field)
		fmt.Fprintf(w, "  %-15s = %s (%s)\n", field, value, cws.Source(field))
	}
	return nil
}

// tailCommand prints the latest run log.
func tailCommand(ctx context.Context, cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("tasklist tail", flag.ContinueOnError)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	workDir := cfg.ProjectRoot
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		workDir = wd
	}

	logDir, err := logging.FindLogDir(cfg.LogDir, workDir)
	if err != nil {
		return fmt.Errorf("finding log directory: %w", err)
	}

	logPath, err := logging.FindLatestLog(logDir)
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}

	if logPath == "" {
		fmt.Fprintln(w, "No log files found.")
		return nil
	}

	fmt.Fprintf(w, "Tailing: %s\n", logPath)
	if *follow {
		fmt.Fprintln(w, "(Ctrl+C to stop)")
	}
	fmt.Fprintln(w)

	return logging.TailLog(ctx, w, logPath, *n, *follow)
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "tasklist version %s\n", Version)
	return nil
}

func logOptions(cfg *config.Config) logging.Options {
	return logging.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		Timestamps: cfg.LogTimestamps,
		Caller:     cfg.LogCaller,
	}
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "tasklist - a single-screen to-do list for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasklist [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run           Open the to-do list (default command)")
	fmt.Fprintln(w, "  print         Render one frame to stdout")
	fmt.Fprintln(w, "  config        Show the effective configuration and its sources")
	fmt.Fprintln(w, "  tail          Print the latest run log")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print Options:")
	fmt.Fprintln(w, "  -width int")
	fmt.Fprintln(w, "        Frame width in columns (default 80)")
	fmt.Fprintln(w, "  -height int")
	fmt.Fprintln(w, "        Frame height in lines (default 24)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options:")
	fmt.Fprintln(w, "  -example")
	fmt.Fprintln(w, "        Print an example config file")
	fmt.Fprintln(w, "  -schema")
	fmt.Fprintln(w, "        Print the config file JSON schema")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tail Options:")
	fmt.Fprintln(w, "  -f, -follow")
	fmt.Fprintln(w, "        Keep printing as the log grows")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keys:")
	fmt.Fprintln(w, "  enter                 Add the typed task")
	fmt.Fprintln(w, "  ↑/↓ pgup/pgdown       Scroll the list")
	fmt.Fprintln(w, "  ctrl+u/ctrl+d         Scroll half a page")
	fmt.Fprintln(w, "  esc, ctrl+c           Quit")
}
