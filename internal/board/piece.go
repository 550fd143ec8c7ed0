package board

// Side represents the owner of a piece.
type Side uint8

const (
	NoSide Side = iota
	White
	Black
)

// Sign returns the attack grid contribution of the side: +1 for White,
// -1 for Black and 0 for NoSide.
func (s Side) Sign() int {
	switch s {
	case White:
		return 1
	case Black:
		return -1
	default:
		return 0
	}
}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoSide"
	}
}

// Kind represents the type of a chess piece.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the descriptor character for the kind (lowercase).
func (k Kind) Char() byte {
	chars := []byte{' ', 'p', 'b', 'n', 'r', 'q', 'k'}
	if k > King {
		return ' '
	}
	return chars[k]
}

// Piece is the content of one square. The zero value is an empty square.
// Kind is NoKind exactly when Side is NoSide.
type Piece struct {
	Kind Kind
	Side Side
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// NewPiece creates a Piece from Kind and Side. Mixing a real kind with
// NoSide (or the other way round) yields NoPiece.
func NewPiece(k Kind, s Side) Piece {
	if k == NoKind || k > King || s == NoSide || s > Black {
		return NoPiece
	}
	return Piece{Kind: k, Side: s}
}

// IsPiece reports whether the square holds a piece.
func (p Piece) IsPiece() bool {
	return p.Kind != NoKind && p.Kind <= King && (p.Side == White || p.Side == Black)
}

// IsValid reports whether p is either NoPiece or a real piece.
func (p Piece) IsValid() bool {
	return p == NoPiece || p.IsPiece()
}

// String returns the descriptor character for the piece.
// Uppercase for white, lowercase for black, a space for an empty square.
func (p Piece) String() string {
	if !p.IsPiece() {
		return " "
	}
	c := p.Kind.Char()
	if p.Side == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a descriptor letter to a Piece.
// The second result is false for any byte that is not one of "pbnrqkPBNRQK".
func PieceFromChar(c byte) (Piece, bool) {
	side := Black
	if c >= 'A' && c <= 'Z' {
		side = White
		c += 'a' - 'A'
	}

	var k Kind
	switch c {
	case 'p':
		k = Pawn
	case 'b':
		k = Bishop
	case 'n':
		k = Knight
	case 'r':
		k = Rook
	case 'q':
		k = Queen
	case 'k':
		k = King
	default:
		return NoPiece, false
	}
	return Piece{Kind: k, Side: side}, true
}
