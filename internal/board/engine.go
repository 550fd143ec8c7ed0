package board

import (
	"fmt"
	"log/slog"

	"github.com/hailam/chessheat/internal/util/slogx"
)

// ClickAction tells what a call to ClickedSquare did.
type ClickAction int

const (
	// ClickIgnored: nothing was selected and the square was empty, or the
	// click was off the board.
	ClickIgnored ClickAction = iota
	// ClickSelected: a piece was picked up.
	ClickSelected
	// ClickMoved: the picked up piece was put down.
	ClickMoved
)

// String returns the action name.
func (a ClickAction) String() string {
	switch a {
	case ClickSelected:
		return "selected"
	case ClickMoved:
		return "moved"
	default:
		return "ignored"
	}
}

// ClickResult describes the outcome of a click.
type ClickResult struct {
	Action   ClickAction
	From     Coord // selected square, or the source of a move
	To       Coord // destination of a move
	Piece    Piece // the selected or moved piece
	Captured Piece // content overwritten at To; NoPiece if none
}

// IsCapture reports whether the move overwrote a piece on another square.
func (r ClickResult) IsCapture() bool {
	return r.Action == ClickMoved && r.Captured.IsPiece()
}

// Engine owns a board, its attack grid and the selection state of the
// select-then-move interaction.
//
// Engine is not safe for concurrent use; callers drive it from a single
// event loop.
type Engine struct {
	board    Board
	attacks  AttackGrid
	selected Coord
	armed    bool

	log *slog.Logger
}

// NewEngine parses descriptor and returns an engine with attacks computed.
// A nil logger discards output.
func NewEngine(descriptor string, log *slog.Logger) (*Engine, error) {
	b, err := ParsePosition(descriptor)
	if err != nil {
		return nil, fmt.Errorf("load position: %w", err)
	}
	return NewEngineFromBoard(b, log), nil
}

// NewEngineFromBoard returns an engine for a copy of b with attacks computed.
func NewEngineFromBoard(b Board, log *slog.Logger) *Engine {
	if log == nil {
		log = slogx.DiscardLogger()
	}
	e := &Engine{
		board:    b,
		selected: NoCoord,
		log:      log,
	}
	e.Recompute()
	return e
}

// Load replaces the position with descriptor, clears the selection and
// recomputes attacks. On error the engine is left unchanged.
func (e *Engine) Load(descriptor string) error {
	b, err := ParsePosition(descriptor)
	if err != nil {
		return fmt.Errorf("load position: %w", err)
	}
	e.board = b
	e.clearSelection()
	e.Recompute()
	return nil
}

// Board returns a copy of the current board.
func (e *Engine) Board() Board {
	return e.board
}

// Attacks returns a copy of the attack grid as of the last Recompute.
func (e *Engine) Attacks() AttackGrid {
	return e.attacks
}

// Selected returns the picked up square, if any.
func (e *Engine) Selected() (Coord, bool) {
	if !e.armed {
		return NoCoord, false
	}
	return e.selected, true
}

// SetPiece edits a square directly. The attack grid is not updated until
// the next Recompute.
func (e *Engine) SetPiece(rank, file int, p Piece) error {
	if !p.IsValid() {
		return fmt.Errorf("invalid piece %+v", p)
	}
	if !e.board.Set(rank, file, p) {
		return fmt.Errorf("square (%d, %d) out of range", rank, file)
	}
	return nil
}

// Recompute rebuilds the attack grid from the current board.
func (e *Engine) Recompute() {
	e.attacks = ComputeAttacks(&e.board)
}

// ClickedSquare feeds one click into the select-then-move interaction.
//
// With nothing selected, a click on a piece selects it and a click on an
// empty square does nothing. With a piece selected, any click is the
// destination: the source is cleared, the piece is written there over
// whatever stood on it and attacks are recomputed. Clicking the selected
// square puts the piece back where it was. No move is ever rejected.
func (e *Engine) ClickedSquare(file, rank int) ClickResult {
	if !InBounds(file, rank) {
		return ClickResult{Action: ClickIgnored, From: NoCoord, To: NoCoord}
	}
	to := NewCoord(file, rank)

	if !e.armed {
		p := e.board.PieceAt(to)
		if !p.IsPiece() {
			return ClickResult{Action: ClickIgnored, From: NoCoord, To: NoCoord}
		}
		e.selected = to
		e.armed = true
		e.log.Debug("selected piece", slog.String("square", to.String()), slog.String("piece", p.String()))
		return ClickResult{Action: ClickSelected, From: to, To: NoCoord, Piece: p}
	}

	from := e.selected
	moved := e.board.PieceAt(from)
	captured := e.board.PieceAt(to)
	if from == to {
		captured = NoPiece
	}

	e.board.Squares[from.Rank][from.File] = NoPiece
	e.board.Squares[to.Rank][to.File] = moved
	e.clearSelection()
	e.Recompute()

	res := ClickResult{Action: ClickMoved, From: from, To: to, Piece: moved, Captured: captured}
	e.log.Debug("moved piece",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.String("piece", moved.String()),
		slog.Bool("capture", res.IsCapture()),
	)
	return res
}

func (e *Engine) clearSelection() {
	e.selected = NoCoord
	e.armed = false
}
