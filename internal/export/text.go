package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hailam/chessheat/internal/board"
	"github.com/hailam/chessheat/internal/heatmap"
	"github.com/hailam/chessheat/internal/util/style"
)

// TextOptions controls WriteText.
type TextOptions struct {
	Color   bool // paint squares with 24-bit background colors
	Palette heatmap.Palette
}

// DefaultTextOptions returns plain output with the default palette.
func DefaultTextOptions() TextOptions {
	return TextOptions{Palette: heatmap.DefaultPalette()}
}

// WriteText prints one line per rank. Each square shows the piece letter
// (or '.') followed by its attack count. Rank labels follow the usual
// orientation where rank 0 is the eighth rank.
func WriteText(w io.Writer, b board.Board, g board.AttackGrid, opts TextOptions) error {
	bw := bufio.NewWriter(w)
	heat := opts.Palette.Grid(g)

	for rank := 0; rank < board.Size; rank++ {
		fmt.Fprintf(bw, "%d ", board.Size-rank)
		for file := 0; file < board.Size; file++ {
			p := b.At(rank, file)
			letter := "."
			if p.IsPiece() {
				letter = p.String()
			}
			cell := fmt.Sprintf(" %s%3d ", letter, g[rank][file])

			if opts.Color {
				bg := heat[rank][file]
				br, bgG, bb := bg.RGB255()
				fr, fg, fb := heatmap.Contrast(bg).RGB255()
				ms := append(style.BgRGB(br, bgG, bb), style.RGB(fr, fg, fb)...)
				cell = style.WithS(true, cell, ms...)
			}
			bw.WriteString(cell)
		}
		bw.WriteByte('\n')
	}

	bw.WriteString("  ")
	for file := 0; file < board.Size; file++ {
		fmt.Fprintf(bw, "   %c  ", 'a'+file)
	}
	bw.WriteByte('\n')

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}
