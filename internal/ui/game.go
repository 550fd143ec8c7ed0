package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hailam/chessheat/internal/board"
	"github.com/hailam/chessheat/internal/storage"
	"github.com/hailam/chessheat/internal/util/slogx"
	"github.com/hajimehoshi/ebiten/v2"
)

// StatusHeight is the height of the status line below the board.
const StatusHeight = 20

// Game implements ebiten.Game interface.
type Game struct {
	engine     *board.Engine
	descriptor string

	// Storage
	storage *storage.Storage
	prefs   *storage.Preferences

	// Components
	renderer *Renderer
	input    *InputHandler
	audio    *AudioManager
	log      *slog.Logger

	status   string
	cellSize int

	// HiDPI scaling
	scale float64
}

// NewGame creates a viewer for eng. The descriptor is kept for reloads.
// A nil store disables persistence.
func NewGame(eng *board.Engine, descriptor string, cellSize int, store *storage.Storage, log *slog.Logger) *Game {
	if log == nil {
		log = slogx.DiscardLogger()
	}
	g := &Game{
		engine:     eng,
		descriptor: descriptor,
		storage:    store,
		renderer:   NewRenderer(cellSize, log),
		input:      NewInputHandler(),
		audio:      NewAudioManager(),
		log:        log,
		cellSize:   cellSize,
		scale:      1.0,
	}
	g.loadPreferences()
	g.audio.SetEnabled(!g.prefs.Mute)
	g.checkFirstLaunch()
	return g
}

// ScreenSize returns the window size in logical pixels.
func (g *Game) ScreenSize() (int, int) {
	side := board.Size * g.cellSize
	return side, side + StatusHeight
}

// loadPreferences loads display toggles from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		g.log.Warn("failed to load preferences", slogx.Err(err))
		g.prefs = storage.DefaultPreferences()
	}
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		g.log.Warn("failed to save preferences", slogx.Err(err))
	}
}

// checkFirstLaunch shows the key help on first launch.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}

	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		g.log.Warn("failed to check first launch", slogx.Err(err))
		return
	}
	if isFirst {
		g.status = "click a piece, then a square; H heat, C counts, P pieces, S sound, R reload"
		if err := g.storage.MarkFirstLaunchComplete(); err != nil {
			g.log.Warn("failed to mark first launch complete", slogx.Err(err))
		}
	}
}

// Update handles input once per tick.
func (g *Game) Update() error {
	g.input.Update()

	switch {
	case IsKeyJustPressed(ebiten.KeyH):
		g.prefs.ShowHeatmap = !g.prefs.ShowHeatmap
		g.savePreferences()
	case IsKeyJustPressed(ebiten.KeyC):
		g.prefs.ShowCounts = !g.prefs.ShowCounts
		g.savePreferences()
	case IsKeyJustPressed(ebiten.KeyP):
		g.prefs.ShowPieces = !g.prefs.ShowPieces
		g.savePreferences()
	case IsKeyJustPressed(ebiten.KeyS):
		g.prefs.Mute = !g.prefs.Mute
		g.audio.SetEnabled(!g.prefs.Mute)
		g.savePreferences()
	case IsKeyJustPressed(ebiten.KeyR):
		g.reload()
	case IsKeyJustPressed(ebiten.KeyEscape), IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	}

	if g.input.IsLeftJustPressed() {
		g.handleBoardInput()
	}
	return nil
}

// handleBoardInput forwards a click to the engine.
func (g *Game) handleBoardInput() {
	file, rank, ok := g.input.CellAt(g.cellSize)
	if !ok {
		return
	}
	res := g.engine.ClickedSquare(file, rank)
	if sound, ok := SoundFor(res); ok {
		g.audio.Play(sound)
	}
	switch res.Action {
	case board.ClickSelected:
		g.status = fmt.Sprintf("%s on %s", res.Piece, res.From)
	case board.ClickMoved:
		if res.IsCapture() {
			g.status = fmt.Sprintf("%s %s x %s (%s)", res.Piece, res.From, res.To, res.Captured)
		} else {
			g.status = fmt.Sprintf("%s %s - %s", res.Piece, res.From, res.To)
		}
	}
}

// reload puts the starting descriptor back on the board.
func (g *Game) reload() {
	if err := g.engine.Load(g.descriptor); err != nil {
		var mpe *board.MalformedPositionError
		if errors.As(err, &mpe) {
			g.status = mpe.Error()
		}
		g.audio.Play(SoundError)
		g.log.Error("reload failed", slogx.Err(err))
		return
	}
	g.status = "reloaded"
}

// Draw renders the board and its overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	// Clear background
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)

	if sel, ok := g.engine.Selected(); ok {
		g.renderer.DrawSelection(screen, sel)
	}

	attacks := g.engine.Attacks()
	if g.prefs.ShowHeatmap {
		g.renderer.DrawHeatmap(screen, attacks)
	}
	if g.prefs.ShowPieces {
		g.renderer.DrawPieces(screen, g.engine.Board())
	}
	if g.prefs.ShowCounts {
		g.renderer.DrawCounts(screen, attacks)
	}
	g.renderer.DrawStatus(screen, g.status)
}

// Layout returns the game's screen dimensions.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	g.input.SetScale(g.scale)

	w, h := g.ScreenSize()
	return int(float64(w) * g.scale), int(float64(h) * g.scale)
}

// Close saves preferences and releases storage.
func (g *Game) Close() {
	if g.storage == nil {
		return
	}
	g.savePreferences()
	if err := g.storage.Close(); err != nil {
		g.log.Warn("failed to close storage", slogx.Err(err))
	}
}
