package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/hailam/chessheat/internal/board"
	"github.com/hailam/chessheat/internal/util/slogx"
)

func newTestView(t *testing.T) (*View, tcell.SimulationScreen, *board.Engine) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)

	eng, err := board.NewEngine(board.StartPosition, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return NewView(screen, eng, board.StartPosition, slogx.DiscardLogger()), screen, eng
}

func click(v *View, file, rank int) {
	x, y := file*CellWidth+1, rank*CellHeight+1
	v.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	v.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func TestSquareAt(t *testing.T) {
	tests := []struct {
		x, y       int
		file, rank int
		ok         bool
	}{
		{0, 0, 0, 0, true},
		{CellWidth - 1, CellHeight - 1, 0, 0, true},
		{CellWidth, CellHeight, 1, 1, true},
		{8*CellWidth - 1, 8*CellHeight - 1, 7, 7, true},
		{8 * CellWidth, 0, 0, 0, false},
		{0, 8 * CellHeight, 0, 0, false},
		{-1, 0, 0, 0, false},
	}
	for _, tc := range tests {
		file, rank, ok := squareAt(tc.x, tc.y)
		if ok != tc.ok || (ok && (file != tc.file || rank != tc.rank)) {
			t.Errorf("squareAt(%d, %d) = %d, %d, %v; want %d, %d, %v",
				tc.x, tc.y, file, rank, ok, tc.file, tc.rank, tc.ok)
		}
	}
}

func TestClickMovesPiece(t *testing.T) {
	v, _, eng := newTestView(t)

	click(v, 4, 6)
	if _, ok := eng.Selected(); !ok {
		t.Fatal("first click did not select the pawn")
	}
	click(v, 4, 4)

	b := eng.Board()
	if b.At(4, 4) != board.NewPiece(board.Pawn, board.White) || b.At(6, 4).IsPiece() {
		t.Errorf("pawn not moved:\n%s", b.String())
	}
	if v.status == "" {
		t.Error("no status after a move")
	}
}

func TestHeldButtonClicksOnce(t *testing.T) {
	v, _, eng := newTestView(t)

	x, y := 4*CellWidth+1, 6*CellHeight+1
	v.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	v.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))

	if _, ok := eng.Selected(); !ok {
		t.Error("a held button counted as two clicks")
	}
}

func TestKeys(t *testing.T) {
	v, _, eng := newTestView(t)

	click(v, 4, 6)
	click(v, 4, 4)
	if !v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)) {
		t.Fatal("reload closed the view")
	}
	if eng.Board() != board.MustParsePosition(board.StartPosition) {
		t.Error("r did not reload the position")
	}
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q did not close the view")
	}
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc did not close the view")
	}
}

func TestDrawShowsPieces(t *testing.T) {
	v, screen, _ := newTestView(t)
	v.Draw()

	mainc, _, _, _ := screen.GetContent(4*CellWidth+CellWidth/2-1, 7*CellHeight+1)
	if mainc != '♔' {
		t.Errorf("e1 shows %q, want the white king", mainc)
	}
	mainc, _, _, _ = screen.GetContent(3*CellWidth+CellWidth-3, 6*CellHeight)
	if mainc != '+' {
		t.Errorf("d2 count starts with %q, want '+'", mainc)
	}
}
