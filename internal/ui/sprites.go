// Package ui implements the attack map window using Ebitengine.
package ui

import (
	"log/slog"

	"github.com/hailam/chessheat/internal/board"
	"github.com/hailam/chessheat/internal/glyph"
	"github.com/hailam/chessheat/internal/util/slogx"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size (e.g., 48)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
	scale       float64 // HiDPI scale factor
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int, log *slog.Logger) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
		scale:       1.0,
	}
	sm.loadPieces(log)
	return sm
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// SetScale sets the HiDPI scale factor.
func (sm *SpriteManager) SetScale(scale float64) {
	sm.scale = scale
}

// loadPieces rasterizes every piece glyph.
func (sm *SpriteManager) loadPieces(log *slog.Logger) {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, piece := range glyph.Pieces() {
		img, err := glyph.Render(piece, renderSize)
		if err != nil {
			log.Warn("failed to render piece", slog.String("piece", piece.String()), slogx.Err(err))
			continue
		}
		sm.pieces[piece] = ebiten.NewImageFromImage(img)
	}
}

// DrawPieceAt draws a piece at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y float64) {
	if !p.IsPiece() {
		return
	}
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := sm.scale / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	// Use linear filtering for smooth scaling
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
