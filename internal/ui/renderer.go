package ui

import (
	"image/color"
	"log/slog"
	"strconv"

	"github.com/hailam/chessheat/internal/board"
	"github.com/hailam/chessheat/internal/heatmap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Theme defines the color scheme for the window.
type Theme struct {
	Palette        heatmap.Palette
	SelectedSquare color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		Palette:        heatmap.BoardPalette(),
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
		TextColor:      color.RGBA{220, 220, 220, 255}, // Light gray
	}
}

// Renderer handles all drawing operations. Rank 0 is drawn at the top, the
// way the position descriptor reads.
type Renderer struct {
	sprites  *SpriteManager
	theme    *Theme
	cellSize int
	scale    float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(cellSize int, log *slog.Logger) *Renderer {
	return &Renderer{
		sprites:  NewSpriteManager(cellSize, log),
		theme:    DefaultTheme(),
		cellSize: cellSize,
		scale:    1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
	r.sprites.SetScale(scale)
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// SquareToScreen converts a square to logical screen coordinates.
func (r *Renderer) SquareToScreen(c board.Coord) (int, int) {
	return c.File * r.cellSize, c.Rank * r.cellSize
}

// DrawBoard draws the squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for rank := 0; rank < board.Size; rank++ {
		for file := 0; file < board.Size; file++ {
			c := board.NewCoord(file, rank)
			x, y := r.SquareToScreen(c)
			col := heatmap.RGBA(r.theme.Palette.Square(c))
			vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.cellSize), r.s(r.cellSize), col, false)
		}
	}
}

// DrawHeatmap draws one disc per square, colored by its attack count.
func (r *Renderer) DrawHeatmap(screen *ebiten.Image, g board.AttackGrid) {
	heat := r.theme.Palette.Grid(g)
	radius := r.s(r.cellSize/2 - 2)

	for rank := 0; rank < board.Size; rank++ {
		for file := 0; file < board.Size; file++ {
			if g[rank][file] == 0 {
				continue
			}
			x, y := r.SquareToScreen(board.NewCoord(file, rank))
			cx := r.s(x) + r.s(r.cellSize)/2
			cy := r.s(y) + r.s(r.cellSize)/2
			vector.DrawFilledCircle(screen, cx, cy, radius, heatmap.RGBA(heat[rank][file]), true)
		}
	}
}

// DrawSelection outlines the picked up square.
func (r *Renderer) DrawSelection(screen *ebiten.Image, c board.Coord) {
	if !c.IsValid() {
		return
	}
	x, y := r.SquareToScreen(c)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.cellSize), r.s(r.cellSize), r.theme.SelectedSquare, false)
}

// DrawPieces draws all pieces on the board.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b board.Board) {
	for rank := 0; rank < board.Size; rank++ {
		for file := 0; file < board.Size; file++ {
			p := b.At(rank, file)
			if !p.IsPiece() {
				continue
			}
			x, y := r.SquareToScreen(board.NewCoord(file, rank))
			r.sprites.DrawPieceAt(screen, p, float64(r.s(x)), float64(r.s(y)))
		}
	}
}

// DrawCounts prints the attack count in the corner of each attacked square.
func (r *Renderer) DrawCounts(screen *ebiten.Image, g board.AttackGrid) {
	face := countFace(r.cellSize, r.scale)
	if face == nil {
		return
	}
	heat := r.theme.Palette.Grid(g)

	for rank := 0; rank < board.Size; rank++ {
		for file := 0; file < board.Size; file++ {
			n := g[rank][file]
			if n == 0 {
				continue
			}
			x, y := r.SquareToScreen(board.NewCoord(file, rank))

			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(r.s(x+r.cellSize-2)), float64(r.s(y+1)))
			op.PrimaryAlign = text.AlignEnd
			op.ColorScale.ScaleWithColor(heatmap.RGBA(heatmap.Contrast(heat[rank][file])))
			text.Draw(screen, strconv.Itoa(n), face, op)
		}
	}
}

// DrawStatus prints a line of text below the board.
func (r *Renderer) DrawStatus(screen *ebiten.Image, msg string) {
	face := statusFace(r.scale)
	if face == nil || msg == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.s(4)), float64(r.s(board.Size*r.cellSize+4)))
	op.ColorScale.ScaleWithColor(r.theme.TextColor)
	text.Draw(screen, msg, face, op)
}

// BoardSize returns the board size in logical pixels.
func (r *Renderer) BoardSize() int {
	return board.Size * r.cellSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
