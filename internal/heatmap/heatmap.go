// Package heatmap maps attack counts to colors. Every renderer (window,
// terminal, SVG) draws from the same palette so the pictures agree.
package heatmap

import (
	"image/color"

	"github.com/hailam/chessheat/internal/board"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colors of the attack map.
type Palette struct {
	LightSquare colorful.Color
	DarkSquare  colorful.Color
	Neutral     colorful.Color // color a heat scale starts from
	White       colorful.Color // full-strength white control
	Black       colorful.Color // full-strength black control
}

// DefaultPalette returns the classic scheme: white and black squares,
// green for squares White controls and red for squares Black controls.
func DefaultPalette() Palette {
	return Palette{
		LightSquare: colorful.Color{R: 1, G: 1, B: 1},
		DarkSquare:  colorful.Color{R: 0, G: 0, B: 0},
		Neutral:     colorful.Color{R: 0, G: 0, B: 0},
		White:       colorful.Color{R: 0, G: 1, B: 0},
		Black:       colorful.Color{R: 1, G: 0, B: 0},
	}
}

// BoardPalette returns a scheme matching the window's tan and brown board.
func BoardPalette() Palette {
	return Palette{
		LightSquare: mustHex("#f0d9b5"),
		DarkSquare:  mustHex("#b58863"),
		Neutral:     mustHex("#282c34"),
		White:       mustHex("#3ddc84"),
		Black:       mustHex("#ff4d4d"),
	}
}

// Square returns the base color of a square.
func (p Palette) Square(c board.Coord) colorful.Color {
	if c.IsLight() {
		return p.LightSquare
	}
	return p.DarkSquare
}

// Heat returns the color of an attack count. Zero keeps the square color;
// otherwise the color is blended from Neutral towards White (positive) or
// Black (negative) by |value| / maxMagnitude.
func (p Palette) Heat(c board.Coord, value, maxMagnitude int) colorful.Color {
	if value == 0 {
		return p.Square(c)
	}
	if maxMagnitude < 1 {
		maxMagnitude = 1
	}

	target := p.White
	if value < 0 {
		target = p.Black
		value = -value
	}
	t := min(float64(value)/float64(maxMagnitude), 1)
	return p.Neutral.BlendRgb(target, t).Clamped()
}

// Grid returns the heat colors of every square of g.
func (p Palette) Grid(g board.AttackGrid) [board.Size][board.Size]colorful.Color {
	var out [board.Size][board.Size]colorful.Color
	m := g.MaxMagnitude()
	for rank := 0; rank < board.Size; rank++ {
		for file := 0; file < board.Size; file++ {
			out[rank][file] = p.Heat(board.NewCoord(file, rank), g[rank][file], m)
		}
	}
	return out
}

// RGBA converts a palette color to an opaque color.RGBA.
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Contrast returns black or white, whichever reads better on top of c.
func Contrast(c colorful.Color) colorful.Color {
	l, _, _ := c.Lab()
	if l > 0.6 {
		return colorful.Color{}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
