// ChessHeat - an attack map viewer built with Ebitengine
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hailam/chessheat/internal/board"
	"github.com/hailam/chessheat/internal/config"
	"github.com/hailam/chessheat/internal/storage"
	"github.com/hailam/chessheat/internal/ui"
	"github.com/hailam/chessheat/internal/util/slogx"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	optionsFile = flag.String("options", "", "TOML options file")
	position    = flag.String("position", "", "position descriptor (overrides the options file)")
)

func main() {
	flag.Parse()

	opts, err := config.Load(*optionsFile)
	if err != nil {
		slog.Error("failed to load options", slogx.Err(err))
		os.Exit(1)
	}
	if *position != "" {
		opts.Position = *position
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.Level()}))

	eng, err := board.NewEngine(opts.Position, log)
	if err != nil {
		var mpe *board.MalformedPositionError
		if errors.As(err, &mpe) {
			log.Error("malformed position", slog.String("descriptor", mpe.Descriptor), slog.Int("offset", mpe.Offset))
		}
		log.Error("failed to start", slogx.Err(err))
		os.Exit(1)
	}

	store, err := storage.NewStorage(opts.DataDir)
	if err != nil {
		log.Warn("failed to initialize storage", slogx.Err(err))
		store = nil
	}

	game := ui.NewGame(eng, opts.Position, opts.CellSize, store, log)
	defer game.Close()

	w, h := game.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("ChessHeat")

	if err := ebiten.RunGame(game); err != nil {
		log.Error("game exited", slogx.Err(err))
		game.Close()
		os.Exit(1)
	}
}
