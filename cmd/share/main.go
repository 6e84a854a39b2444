package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MikhailRaia/link-share/internal/app"
	"github.com/MikhailRaia/link-share/internal/config"
	"github.com/MikhailRaia/link-share/internal/logger"
	"github.com/MikhailRaia/link-share/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "share: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// stdout belongs to the terminal UI.
	logFile, err := os.OpenFile(filepath.Join(os.TempDir(), "share.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	if err := logger.InitLoggerTo(logFile, cfg.LogLevel); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.New(ctx, app.NewWidget(cfg), cfg.PageURL)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}

	return nil
}
