package board

import (
	"errors"
	"testing"

	"github.com/notnil/chess"
)

func TestParseStartPosition(t *testing.T) {
	b, err := ParsePosition(StartPosition)
	if err != nil {
		t.Fatalf("Failed to parse start position: %v", err)
	}

	if got := b.Count(White); got != 16 {
		t.Errorf("white pieces = %d, want 16", got)
	}
	if got := b.Count(Black); got != 16 {
		t.Errorf("black pieces = %d, want 16", got)
	}
	if got := b.CountKind(Pawn, White); got != 8 {
		t.Errorf("white pawns = %d, want 8", got)
	}
	if got := b.CountKind(Pawn, Black); got != 8 {
		t.Errorf("black pawns = %d, want 8", got)
	}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < Size; file++ {
		if got, want := b.At(0, file), NewPiece(backRank[file], Black); got != want {
			t.Errorf("rank 0 file %d = %v, want %v", file, got, want)
		}
		if got, want := b.At(7, file), NewPiece(backRank[file], White); got != want {
			t.Errorf("rank 7 file %d = %v, want %v", file, got, want)
		}
		if got, want := b.At(1, file), NewPiece(Pawn, Black); got != want {
			t.Errorf("rank 1 file %d = %v, want %v", file, got, want)
		}
		if got, want := b.At(6, file), NewPiece(Pawn, White); got != want {
			t.Errorf("rank 6 file %d = %v, want %v", file, got, want)
		}
		for rank := 2; rank < 6; rank++ {
			if b.At(rank, file).IsPiece() {
				t.Errorf("square (%d, %d) should be empty", rank, file)
			}
		}
	}

	if b.Castling != AllCastling {
		t.Errorf("castling = %v, want KQkq", b.Castling)
	}
	if got, want := b.Placement(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"; got != want {
		t.Errorf("Placement() = %q, want %q", got, want)
	}
}

func TestParseEmptyBoard(t *testing.T) {
	b, err := ParsePosition("8/8/8/8/8/8/8/8")
	if err != nil {
		t.Fatalf("Failed to parse empty board: %v", err)
	}
	if b.Count(White)+b.Count(Black) != 0 {
		t.Errorf("empty board has pieces:\n%s", b.String())
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"seven ranks", "8/8/8/8/8/8/8"},
		{"nine ranks", "8/8/8/8/8/8/8/8/8"},
		{"short rank", "7/8/8/8/8/8/8/8"},
		{"long rank", "ppppppppp/8/8/8/8/8/8/8"},
		{"digit overflow", "4p4/8/8/8/8/8/8/8"},
		{"digit nine", "9/8/8/8/8/8/8/8"},
		{"digit zero", "08/8/8/8/8/8/8/8"},
		{"unknown letter", "rnbqkbnx/8/8/8/8/8/8/8"},
		{"short last rank", "8/8/8/8/8/8/8/7 w - - 0 1"},
		{"bad castling", "8/8/8/8/8/8/8/8 w KX - 0 1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePosition(tc.text)
			if err == nil {
				t.Fatalf("ParsePosition(%q) succeeded", tc.text)
			}
			var mpe *MalformedPositionError
			if !errors.As(err, &mpe) {
				t.Fatalf("error %v is not a MalformedPositionError", err)
			}
			if mpe.Descriptor != tc.text {
				t.Errorf("Descriptor = %q, want %q", mpe.Descriptor, tc.text)
			}
		})
	}
}

func TestParseCastling(t *testing.T) {
	tests := []struct {
		text string
		want CastlingRights
	}{
		{"8/8/8/8/8/8/8/8", AllCastling},
		{"8/8/8/8/8/8/8/8 w", AllCastling},
		{"8/8/8/8/8/8/8/8 w - - 0 1", CastlingRights{}},
		{"8/8/8/8/8/8/8/8 b Kq - 0 1", CastlingRights{WhiteKingSide: true, BlackQueenSide: true}},
		{"8/8/8/8/8/8/8/8 w Qk", CastlingRights{WhiteQueenSide: true, BlackKingSide: true}},
	}

	for _, tc := range tests {
		b, err := ParsePosition(tc.text)
		if err != nil {
			t.Errorf("ParsePosition(%q): %v", tc.text, err)
			continue
		}
		if b.Castling != tc.want {
			t.Errorf("ParsePosition(%q) castling = %v, want %v", tc.text, b.Castling, tc.want)
		}
	}
}

func TestPieceFromChar(t *testing.T) {
	for _, c := range []byte("pbnrqkPBNRQK") {
		p, ok := PieceFromChar(c)
		if !ok {
			t.Errorf("PieceFromChar(%q) failed", c)
			continue
		}
		if p.String() != string(c) {
			t.Errorf("PieceFromChar(%q).String() = %q", c, p.String())
		}
	}
	for _, c := range []byte("x1/ -") {
		if p, ok := PieceFromChar(c); ok || p != NoPiece {
			t.Errorf("PieceFromChar(%q) = %v, %v; want NoPiece, false", c, p, ok)
		}
	}
	if NewPiece(Pawn, NoSide).IsPiece() || NewPiece(NoKind, White).IsPiece() {
		t.Error("NewPiece mixed a kind with no side")
	}
	for _, p := range []Piece{{Kind: Rook}, {Side: Black}, {Kind: King + 1, Side: White}} {
		if p.IsValid() || p.IsPiece() {
			t.Errorf("%+v reported as a valid piece", p)
		}
	}
	if !NoPiece.IsValid() || !NewPiece(Queen, Black).IsValid() {
		t.Error("valid pieces rejected")
	}
}

// TestParseMatchesReference loads positions with an independent FEN reader
// and compares every square.
func TestParseMatchesReference(t *testing.T) {
	positions := []string{
		StartPosition,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"R6k/6pp/8/8/8/8/8/K7 b - - 0 1",
	}

	kinds := map[chess.PieceType]Kind{
		chess.Pawn:   Pawn,
		chess.Knight: Knight,
		chess.Bishop: Bishop,
		chess.Rook:   Rook,
		chess.Queen:  Queen,
		chess.King:   King,
	}

	for _, fen := range positions {
		b, err := ParsePosition(fen)
		if err != nil {
			t.Errorf("ParsePosition(%q): %v", fen, err)
			continue
		}

		opt, err := chess.FEN(fen)
		if err != nil {
			t.Fatalf("reference reader rejected %q: %v", fen, err)
		}
		ref := chess.NewGame(opt).Position().Board().SquareMap()

		for rank := 0; rank < Size; rank++ {
			for file := 0; file < Size; file++ {
				sq := chess.NewSquare(chess.File(file), chess.Rank(Size-1-rank))
				want := NoPiece
				if rp, ok := ref[sq]; ok && rp != chess.NoPiece {
					side := White
					if rp.Color() == chess.Black {
						side = Black
					}
					want = NewPiece(kinds[rp.Type()], side)
				}
				if got := b.At(rank, file); got != want {
					t.Errorf("%s: square %v = %v, want %v", fen, NewCoord(file, rank), got, want)
				}
			}
		}
	}
}
