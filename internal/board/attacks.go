package board

import (
	"fmt"
	"strings"
)

// AttackGrid holds, per square, the number of white attackers minus the
// number of black attackers. Indexed [rank][file] like Board.
type AttackGrid [Size][Size]int

// Offset tables for the non-sliding pieces, as (rank, file) deltas.
var (
	knightOffsets = [8][2]int{
		{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
		{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	}
	kingOffsets = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}

	bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirections   = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
)

// secureAdd adds value to the cell at (file, rank) if it is on the board.
// It reports whether the cell existed.
func (g *AttackGrid) secureAdd(file, rank, value int) bool {
	if !InBounds(file, rank) {
		return false
	}
	g[rank][file] += value
	return true
}

// At returns the attack count of the square at (rank, file), 0 off-board.
func (g AttackGrid) At(rank, file int) int {
	if !InBounds(file, rank) {
		return 0
	}
	return g[rank][file]
}

// MaxMagnitude returns the largest absolute value in the grid, at least 1,
// for normalizing heat colors.
func (g AttackGrid) MaxMagnitude() int {
	m := 1
	for rank := range g {
		for _, v := range g[rank] {
			if v < 0 {
				v = -v
			}
			m = max(m, v)
		}
	}
	return m
}

// TotalMagnitude returns the sum of absolute values over all cells.
func (g AttackGrid) TotalMagnitude() int {
	total := 0
	for rank := range g {
		for _, v := range g[rank] {
			if v < 0 {
				v = -v
			}
			total += v
		}
	}
	return total
}

// String renders the grid as eight lines of right-aligned numbers.
func (g AttackGrid) String() string {
	var sb strings.Builder
	for rank := range g {
		for file, v := range g[rank] {
			if file > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%3d", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ComputeAttacks builds the attack grid of b from scratch.
func ComputeAttacks(b *Board) AttackGrid {
	var g AttackGrid
	for rank := 0; rank < Size; rank++ {
		for file := 0; file < Size; file++ {
			p := b.Squares[rank][file]
			if !p.IsPiece() {
				continue
			}
			g.addPiece(b, rank, file, p)
		}
	}
	return g
}

// addPiece adds the attacks of p standing on (rank, file).
func (g *AttackGrid) addPiece(b *Board, rank, file int, p Piece) {
	value := p.Side.Sign()

	switch p.Kind {
	case Pawn:
		g.addPawn(rank, file, p.Side, value)
	case Bishop:
		g.addBishop(b, rank, file, value)
	case Knight:
		g.addOffsets(rank, file, &knightOffsets, value)
	case Rook:
		g.addRook(b, rank, file, value)
	case Queen:
		g.addQueen(b, rank, file, value)
	case King:
		g.addOffsets(rank, file, &kingOffsets, value)
	}
}

// addPawn adds the two diagonal capture squares. White pawns advance
// towards rank 0, black pawns towards rank 7.
func (g *AttackGrid) addPawn(rank, file int, side Side, value int) {
	forward := 1
	if side == White {
		forward = -1
	}
	g.secureAdd(file-1, rank+forward, value)
	g.secureAdd(file+1, rank+forward, value)
}

// addOffsets adds one attack per offset; nothing blocks a jump.
func (g *AttackGrid) addOffsets(rank, file int, offsets *[8][2]int, value int) {
	for _, o := range offsets {
		g.secureAdd(file+o[1], rank+o[0], value)
	}
}

func (g *AttackGrid) addBishop(b *Board, rank, file, value int) {
	for _, d := range bishopDirections {
		g.addRay(b, rank, file, d[0], d[1], value)
	}
}

func (g *AttackGrid) addRook(b *Board, rank, file, value int) {
	for _, d := range rookDirections {
		g.addRay(b, rank, file, d[0], d[1], value)
	}
}

// addQueen combines the rook and bishop rays.
func (g *AttackGrid) addQueen(b *Board, rank, file, value int) {
	g.addRook(b, rank, file, value)
	g.addBishop(b, rank, file, value)
}

// addRay walks from (rank, file) in direction (dr, df). Every square up to
// and including the first occupied one is attacked; the edge of the board
// ends the ray without an attack.
func (g *AttackGrid) addRay(b *Board, rank, file, dr, df, value int) {
	for i := 1; i < Size; i++ {
		r, f := rank+dr*i, file+df*i
		if !g.secureAdd(f, r, value) {
			return
		}
		if b.Squares[r][f].IsPiece() {
			return
		}
	}
}
