// Package glyph draws piece icons. Each piece is an SVG document built from
// simple shapes and rasterized with oksvg, so no image assets ship with the
// binary.
package glyph

import (
	"fmt"
	"image"
	"strings"

	"github.com/hailam/chessheat/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ViewBox is the side length of the SVG coordinate space.
const ViewBox = 45

// Shapes per kind, drawn on a 45x45 canvas.
var shapes = map[board.Kind]string{
	board.Pawn: `<circle cx="22.5" cy="13" r="6"/>` +
		`<path d="M17 20 L28 20 L31 33 L14 33 Z"/>` +
		`<rect x="11" y="33" width="23" height="6"/>`,
	board.Bishop: `<circle cx="22.5" cy="8" r="3"/>` +
		`<path d="M22.5 11 C14 17 14 26 17 31 L28 31 C31 26 31 17 22.5 11 Z"/>` +
		`<rect x="12" y="32" width="21" height="7"/>`,
	board.Knight: `<path d="M13 39 L33 39 C33 28 31 16 22 9 L19 5 L17 10 C13 13 9 19 11 24 C13 26 16 25 18 22 C19 27 14 31 13 39 Z"/>`,
	board.Rook: `<path d="M11 39 L34 39 L34 34 L31 34 L31 20 L34 20 L34 10 L30 10 L30 14 L26 14 L26 10 L19 10 L19 14 L15 14 L15 10 L11 10 L11 20 L14 20 L14 34 L11 34 Z"/>`,
	board.Queen: `<path d="M9 14 L14 31 L31 31 L36 14 L28 23 L22.5 10 L17 23 Z"/>` +
		`<circle cx="9" cy="13" r="2.5"/><circle cx="22.5" cy="9" r="2.5"/><circle cx="36" cy="13" r="2.5"/>` +
		`<rect x="12" y="32" width="21" height="7"/>`,
	board.King: `<path d="M21 4 L24 4 L24 8 L28 8 L28 11 L24 11 L24 16 L21 16 L21 11 L17 11 L17 8 L21 8 Z"/>` +
		`<path d="M12 31 C8 22 15 15 22.5 20 C30 15 37 22 33 31 Z"/>` +
		`<rect x="12" y="32" width="21" height="7"/>`,
}

// SVG returns the icon of p as an SVG document.
func SVG(p board.Piece) (string, error) {
	body, ok := shapes[p.Kind]
	if !ok || !p.IsPiece() {
		return "", fmt.Errorf("no glyph for %v %v", p.Side, p.Kind)
	}

	fill, stroke := "#ffffff", "#000000"
	if p.Side == board.Black {
		fill, stroke = "#000000", "#ffffff"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		ViewBox, ViewBox, ViewBox, ViewBox)
	fmt.Fprintf(&sb, `<g fill="%s" stroke="%s" stroke-width="1.5" stroke-linejoin="round">`, fill, stroke)
	sb.WriteString(body)
	sb.WriteString(`</g></svg>`)
	return sb.String(), nil
}

// Render rasterizes the icon of p into a size x size image.
func Render(p board.Piece, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid glyph size %d", size)
	}
	doc, err := SVG(p)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parse glyph %v: %w", p, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// Pieces lists every piece that has a glyph.
func Pieces() []board.Piece {
	var out []board.Piece
	for _, s := range []board.Side{board.White, board.Black} {
		for k := board.Pawn; k <= board.King; k++ {
			out = append(out, board.NewPiece(k, s))
		}
	}
	return out
}
