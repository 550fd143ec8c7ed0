// Package board implements the attack-map engine: the position model, the
// position descriptor loader, attack counting and the click-to-move state
// machine.
package board

import "fmt"

// Size is the number of ranks and files.
const Size = 8

// Coord addresses a square. Rank 0 is the first rank group of the
// descriptor (Black's back rank in the standard setup), file 0 the first
// square parsed within a rank.
type Coord struct {
	Rank int
	File int
}

// NoCoord is returned where no square applies.
var NoCoord = Coord{Rank: -1, File: -1}

// NewCoord creates a coordinate from file and rank (0-indexed).
func NewCoord(file, rank int) Coord {
	return Coord{Rank: rank, File: file}
}

// InBounds reports whether file and rank both lie in [0,8).
func InBounds(file, rank int) bool {
	return file >= 0 && file < Size && rank >= 0 && rank < Size
}

// IsValid reports whether the coordinate lies on the board.
func (c Coord) IsValid() bool {
	return InBounds(c.File, c.Rank)
}

// String returns the algebraic name of the square (e.g. "e2"), assuming
// the usual orientation where rank 0 is the eighth rank.
func (c Coord) String() string {
	if !c.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+c.File, '8'-c.Rank)
}

// IsLight reports whether the square is drawn in the light color.
func (c Coord) IsLight() bool {
	return (c.Rank+c.File)%2 == 0
}

// CellAt converts pixel coordinates to the square under them by integer
// division by the cell size.
func CellAt(x, y, cellSize int) (file, rank int, ok bool) {
	if cellSize <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	file, rank = x/cellSize, y/cellSize
	if !InBounds(file, rank) {
		return 0, 0, false
	}
	return file, rank, true
}
