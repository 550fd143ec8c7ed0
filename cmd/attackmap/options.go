package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hailam/chessheat/internal/board"
	"github.com/hailam/chessheat/internal/config"
	"github.com/spf13/cobra"
)

var (
	optionsFile string
	position    string
	logLevel    string
)

func addGlobalFlags(cmd *cobra.Command) {
	p := cmd.PersistentFlags()
	p.StringVarP(&optionsFile, "options", "o", "", "TOML options file")
	p.StringVarP(&position, "position", "p", "", "position descriptor\n(overrides the options file)")
	p.StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")
}

// setup loads options, applies flag overrides and builds the engine.
func setup() (config.Options, *board.Engine, *slog.Logger, error) {
	opts, err := config.Load(optionsFile)
	if err != nil {
		return config.Options{}, nil, nil, err
	}
	if position != "" {
		opts.Position = position
	}
	if logLevel != "" {
		opts.LogLevel = logLevel
		if err := opts.Validate(); err != nil {
			return config.Options{}, nil, nil, fmt.Errorf("validate options: %w", err)
		}
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.Level()}))
	eng, err := board.NewEngine(opts.Position, log)
	if err != nil {
		return config.Options{}, nil, nil, err
	}
	return opts, eng, log, nil
}
