package board

import (
	"fmt"
	"strings"
)

// StartPosition is the descriptor of the standard starting position.
const StartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MalformedPositionError is returned by ParsePosition when a descriptor does
// not describe exactly eight ranks of eight files, or contains a character
// outside the accepted set.
type MalformedPositionError struct {
	Descriptor string
	Offset     int // byte offset of the offending character, -1 if none
	Reason     string
}

func (e *MalformedPositionError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("malformed position %q: %s", e.Descriptor, e.Reason)
	}
	return fmt.Sprintf("malformed position %q at offset %d: %s", e.Descriptor, e.Offset, e.Reason)
}

// ParsePosition parses a position descriptor into a Board.
//
// Only the piece placement is required. If the descriptor carries a
// castling field (third space-separated field), its letters set the
// castling flags; otherwise every flag stays set. The remaining fields are
// ignored.
func ParsePosition(text string) (Board, error) {
	b := NewBoard()

	end, err := parsePlacement(&b, text)
	if err != nil {
		return Board{}, err
	}

	fields := strings.Fields(text[end:])
	if len(fields) >= 2 {
		if err := parseCastling(&b, text, fields[1]); err != nil {
			return Board{}, err
		}
	}

	return b, nil
}

// MustParsePosition is like ParsePosition but panics on error.
func MustParsePosition(text string) Board {
	b, err := ParsePosition(text)
	if err != nil {
		panic(err)
	}
	return b
}

// parsePlacement fills b from the piece placement field and returns the
// offset where the placement ended.
func parsePlacement(b *Board, text string) (int, error) {
	malformed := func(offset int, format string, args ...any) error {
		return &MalformedPositionError{
			Descriptor: text,
			Offset:     offset,
			Reason:     fmt.Sprintf(format, args...),
		}
	}

	rank, file := 0, 0
	i := 0
placement:
	for ; i < len(text); i++ {
		c := text[i]

		switch {
		case c == '/':
			if file != Size {
				return 0, malformed(i, "rank %d has %d files", rank, file)
			}
			if rank == Size-1 {
				return 0, malformed(i, "more than %d ranks", Size)
			}
			rank++
			file = 0

		case c == ' ':
			break placement

		case c >= '1' && c <= '8':
			n := int(c - '0')
			if file+n > Size {
				return 0, malformed(i, "rank %d overflows %d files", rank, Size)
			}
			for j := 0; j < n; j++ {
				b.Squares[rank][file] = NoPiece
				file++
			}

		default:
			p, ok := PieceFromChar(c)
			if !ok {
				return 0, malformed(i, "invalid character %q", c)
			}
			if file >= Size {
				return 0, malformed(i, "rank %d overflows %d files", rank, Size)
			}
			b.Squares[rank][file] = p
			file++
		}
	}

	if rank != Size-1 || file != Size {
		return 0, malformed(-1, "need %d complete ranks, got %d ranks with %d files in the last", Size, rank+1, file)
	}
	return i, nil
}

// parseCastling reads the castling field of a descriptor.
func parseCastling(b *Board, text, field string) error {
	b.Castling = CastlingRights{}
	if field == "-" {
		return nil
	}

	for _, c := range field {
		switch c {
		case 'K':
			b.Castling.WhiteKingSide = true
		case 'Q':
			b.Castling.WhiteQueenSide = true
		case 'k':
			b.Castling.BlackKingSide = true
		case 'q':
			b.Castling.BlackQueenSide = true
		default:
			return &MalformedPositionError{
				Descriptor: text,
				Offset:     -1,
				Reason:     fmt.Sprintf("invalid castling character %q", c),
			}
		}
	}

	return nil
}
