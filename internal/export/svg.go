// Package export writes attack maps as SVG documents or terminal text.
package export

import (
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/hailam/chessheat/internal/board"
	"github.com/hailam/chessheat/internal/heatmap"
)

// Figurines for pieces, indexed by Kind.
var (
	whiteFigurines = []string{"", "♙", "♗", "♘", "♖", "♕", "♔"}
	blackFigurines = []string{"", "♟", "♝", "♞", "♜", "♛", "♚"}
)

// Figurine returns the Unicode chess symbol of p, "" for an empty square.
func Figurine(p board.Piece) string {
	if !p.IsPiece() {
		return ""
	}
	if p.Side == board.White {
		return whiteFigurines[p.Kind]
	}
	return blackFigurines[p.Kind]
}

// SVGOptions controls WriteSVG.
type SVGOptions struct {
	CellSize int
	Palette  heatmap.Palette
	Counts   bool // print the attack count in each square
	Pieces   bool // draw piece figurines
	Title    string
}

// DefaultSVGOptions returns options matching the window's default look.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		CellSize: 48,
		Palette:  heatmap.DefaultPalette(),
		Counts:   true,
		Pieces:   true,
		Title:    "attack map",
	}
}

// errWriter remembers the first write error so that svgo, which ignores
// errors, can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// WriteSVG draws the board and its attack grid: one square per cell, a heat
// disc inset by two pixels, then the piece and the count on top.
func WriteSVG(w io.Writer, b board.Board, g board.AttackGrid, opts SVGOptions) error {
	if opts.CellSize < 8 {
		return fmt.Errorf("cell size %d too small", opts.CellSize)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	cell := opts.CellSize
	side := cell * board.Size

	canvas.Start(side, side)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}

	heat := opts.Palette.Grid(g)
	for rank := 0; rank < board.Size; rank++ {
		for file := 0; file < board.Size; file++ {
			c := board.NewCoord(file, rank)
			x, y := file*cell, rank*cell
			square := opts.Palette.Square(c)
			fill := heat[rank][file]

			canvas.Rect(x, y, cell, cell, "fill:"+square.Hex())
			canvas.Circle(x+cell/2, y+cell/2, cell/2-2,
				fmt.Sprintf("fill:%s;stroke:%s", fill.Hex(), square.Hex()))

			ink := heatmap.Contrast(fill).Hex()
			if p := b.PieceAt(c); opts.Pieces && p.IsPiece() {
				canvas.Text(x+cell/2, y+cell*3/4, Figurine(p),
					fmt.Sprintf("font-size:%dpx;text-anchor:middle;fill:%s", cell*3/5, ink))
			}
			if opts.Counts && g[rank][file] != 0 {
				canvas.Text(x+cell-3, y+cell/4, strconv.Itoa(g[rank][file]),
					fmt.Sprintf("font-size:%dpx;text-anchor:end;font-family:monospace;fill:%s", cell/4, ink))
			}
		}
	}

	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}
