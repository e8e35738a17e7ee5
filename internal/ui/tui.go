// Package ui provides the terminal to-do list screen.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist-go/internal/config"
)

// RunTUI runs the screen until the user quits or ctx is cancelled.
func RunTUI(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	screen := NewScreen(screenOptions(cfg, logger)...)
	program := tea.NewProgram(screen, programOptions(ctx, cfg)...)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// Snapshot renders one frame of a fresh screen at the given size.
func Snapshot(cfg *config.Config, width, height int) string {
	opts := append(screenOptions(cfg, nil), WithSize(width, height))
	return NewScreen(opts...).View()
}

func screenOptions(cfg *config.Config, logger *log.Logger) []ScreenOption {
	opts := []ScreenOption{WithLogger(logger)}
	if cfg != nil {
		opts = append(opts,
			WithSeeds(cfg.Seeds()),
			WithLineUnits(cfg.LineUnits),
		)
	}
	return opts
}

func programOptions(ctx context.Context, cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg == nil || cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg == nil || cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
