package board

import (
	"strconv"
	"strings"
)

// CastlingRights holds the castling flags read from a descriptor.
// They are kept as metadata only; nothing in the engine consults them.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// AllCastling has every flag set.
var AllCastling = CastlingRights{true, true, true, true}

// String returns the castling field in descriptor form ("KQkq", "-").
func (cr CastlingRights) String() string {
	var sb strings.Builder
	if cr.WhiteKingSide {
		sb.WriteByte('K')
	}
	if cr.WhiteQueenSide {
		sb.WriteByte('Q')
	}
	if cr.BlackKingSide {
		sb.WriteByte('k')
	}
	if cr.BlackQueenSide {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Board is an 8x8 grid of squares indexed [rank][file].
// It is a plain value: assigning a Board copies every square.
type Board struct {
	Squares  [Size][Size]Piece
	Castling CastlingRights
}

// NewBoard returns an empty board with all castling flags set.
func NewBoard() Board {
	return Board{Castling: AllCastling}
}

// At returns the content of the square at (rank, file).
// Out-of-range coordinates read as an empty square.
func (b Board) At(rank, file int) Piece {
	if !InBounds(file, rank) {
		return NoPiece
	}
	return b.Squares[rank][file]
}

// PieceAt returns the content of the square at c.
func (b Board) PieceAt(c Coord) Piece {
	return b.At(c.Rank, c.File)
}

// Set places p on (rank, file). It reports false for out-of-range squares
// and for pieces that mix a kind with no side.
func (b *Board) Set(rank, file int, p Piece) bool {
	if !InBounds(file, rank) || !p.IsValid() {
		return false
	}
	b.Squares[rank][file] = p
	return true
}

// Count returns the number of pieces of the given side.
func (b Board) Count(s Side) int {
	n := 0
	for rank := range b.Squares {
		for _, p := range b.Squares[rank] {
			if p.IsPiece() && p.Side == s {
				n++
			}
		}
	}
	return n
}

// CountKind returns the number of pieces of the given kind and side.
func (b Board) CountKind(k Kind, s Side) int {
	n := 0
	for rank := range b.Squares {
		for _, p := range b.Squares[rank] {
			if p.Kind == k && p.Side == s {
				n++
			}
		}
	}
	return n
}

// Placement returns the piece placement field of a descriptor for the board.
func (b Board) Placement() string {
	var sb strings.Builder
	for rank := 0; rank < Size; rank++ {
		empty := 0
		for file := 0; file < Size; file++ {
			p := b.Squares[rank][file]
			if !p.IsPiece() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank < Size-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// String renders the board as eight lines of piece letters, '.' for empty.
func (b Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < Size; rank++ {
		for file := 0; file < Size; file++ {
			p := b.Squares[rank][file]
			if p.IsPiece() {
				sb.WriteString(p.String())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
