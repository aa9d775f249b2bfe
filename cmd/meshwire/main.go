// Package main is the meshwire terminal wireframe viewer.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"meshwire/internal/config"
	"meshwire/internal/logger"
	"meshwire/internal/tui"
)

func main() {
	// Parse CLI flags
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if p := config.WriteConfigPath(); p != "" {
		if err := cfg.SaveTo(p); err != nil {
			fmt.Fprintf(os.Stderr, "Config write error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("wrote", p)
		return
	}

	var path string
	if args := config.Args(); len(args) > 0 {
		path = args[0]
	}
	headless := config.SnapshotPath() != "" || config.Dump()

	// The TUI owns the terminal, so only headless runs log to the console.
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, headless); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if headless {
		if err := runHeadless(cfg, path, config.SnapshotPath(), config.Dump(), os.Stdout); err != nil {
			logger.Error("headless run failed", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			logger.Sync()
			os.Exit(1)
		}
		return
	}

	logger.Info("starting viewer", zap.String("path", path))

	var m tea.Model
	if path != "" {
		m = tui.NewWithPath(cfg, path)
	} else {
		m = tui.New(cfg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		logger.Error("viewer failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}
