// Package config loads viewer options from a TOML file.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/hailam/chessheat/internal/board"
	"github.com/hailam/chessheat/internal/util/slogx"
)

const (
	DefaultCellSize = 48
	MinCellSize     = 16
	MaxCellSize     = 256
)

type Options struct {
	Position string `toml:"position"`
	CellSize int    `toml:"cell-size"`
	DataDir  string `toml:"data-dir"`
	LogLevel string `toml:"log-level"`
}

func (o *Options) FillDefaults() {
	if o.Position == "" {
		o.Position = board.StartPosition
	}
	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if o.LogLevel == "" {
		o.LogLevel = "info"
	}
}

// Validate checks the options after FillDefaults. The position itself is
// checked when the engine loads it.
func (o *Options) Validate() error {
	if o.CellSize < MinCellSize || o.CellSize > MaxCellSize {
		return fmt.Errorf("cell size %d out of range [%d, %d]", o.CellSize, MinCellSize, MaxCellSize)
	}
	if _, err := slogx.ParseLevel(o.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (o *Options) Level() slog.Level {
	lvl, err := slogx.ParseLevel(o.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Load reads options from path. An empty path yields the defaults.
func Load(path string) (Options, error) {
	var opts Options
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Options{}, fmt.Errorf("read options file: %w", err)
		}
		if err := Parse(data, &opts); err != nil {
			return Options{}, err
		}
	}
	opts.FillDefaults()
	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("validate options: %w", err)
	}
	return opts, nil
}

// Parse decodes TOML data into opts, rejecting unknown keys.
func Parse(data []byte, opts *Options) error {
	md, err := toml.Decode(string(data), opts)
	if err != nil {
		return fmt.Errorf("unmarshal options file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return fmt.Errorf("unknown option %q", undecoded[0].String())
	}
	return nil
}
