// Package tui shows the attack map in a terminal and lets the user move
// pieces with the mouse.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/hailam/chessheat/internal/board"
	"github.com/hailam/chessheat/internal/export"
	"github.com/hailam/chessheat/internal/heatmap"
	"github.com/hailam/chessheat/internal/util/slogx"
	"github.com/lucasb-eyer/go-colorful"
)

// Terminal cells per board square.
const (
	CellWidth  = 6
	CellHeight = 3
)

// View draws an engine onto a tcell screen and feeds mouse clicks back.
type View struct {
	screen     tcell.Screen
	engine     *board.Engine
	palette    heatmap.Palette
	descriptor string
	log        *slog.Logger

	buttonDown bool
	status     string
}

// NewView creates a view. descriptor is reloaded when the user presses 'r'.
func NewView(screen tcell.Screen, eng *board.Engine, descriptor string, log *slog.Logger) *View {
	if log == nil {
		log = slogx.DiscardLogger()
	}
	return &View{
		screen:     screen,
		engine:     eng,
		palette:    heatmap.DefaultPalette(),
		descriptor: descriptor,
		log:        log,
		status:     "click a piece, then its destination; r reloads, q quits",
	}
}

// Run opens the terminal and processes events until the user quits.
func Run(eng *board.Engine, descriptor string, log *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	v := NewView(screen, eng, descriptor, log)
	v.Draw()
	for {
		if !v.HandleEvent(screen.PollEvent()) {
			return nil
		}
		v.Draw()
	}
}

// HandleEvent applies one event. It returns false when the view should close.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return false
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return false
		case ev.Rune() == 'r':
			if err := v.engine.Load(v.descriptor); err != nil {
				v.status = err.Error()
			} else {
				v.status = "position reloaded"
			}
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !v.buttonDown {
			x, y := ev.Position()
			v.click(x, y)
		}
		v.buttonDown = pressed
	}
	return true
}

// click translates a terminal cell to a square and forwards it.
func (v *View) click(x, y int) {
	file, rank, ok := squareAt(x, y)
	if !ok {
		return
	}
	res := v.engine.ClickedSquare(file, rank)
	switch res.Action {
	case board.ClickSelected:
		v.status = fmt.Sprintf("selected %s on %s", res.Piece.Kind, res.From)
	case board.ClickMoved:
		v.status = fmt.Sprintf("%s %s to %s", res.Piece.Kind, res.From, res.To)
		if res.IsCapture() {
			v.status += fmt.Sprintf(", took %s %s", res.Captured.Side, res.Captured.Kind)
		}
	}
	v.log.Debug("terminal click", slog.Int("file", file), slog.Int("rank", rank), slog.String("action", res.Action.String()))
}

// squareAt maps a terminal cell to a board square. Squares are wider than
// they are tall, so the two axes divide by different cell sizes.
func squareAt(x, y int) (file, rank int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	file, rank = x/CellWidth, y/CellHeight
	if !board.InBounds(file, rank) {
		return 0, 0, false
	}
	return file, rank, true
}

// Draw paints the board, the heat colors and the status line.
func (v *View) Draw() {
	v.screen.Clear()

	b := v.engine.Board()
	g := v.engine.Attacks()
	heat := v.palette.Grid(g)
	selected, armed := v.engine.Selected()

	for rank := 0; rank < board.Size; rank++ {
		for file := 0; file < board.Size; file++ {
			c := board.NewCoord(file, rank)
			bg := heat[rank][file]
			if armed && c == selected {
				bg = colorful.Color{R: 0.97, G: 0.97, B: 0.41}
			}
			style := tcell.StyleDefault.
				Background(tcellColor(bg)).
				Foreground(tcellColor(heatmap.Contrast(bg)))

			x0, y0 := file*CellWidth, rank*CellHeight
			for dy := 0; dy < CellHeight; dy++ {
				for dx := 0; dx < CellWidth; dx++ {
					v.screen.SetContent(x0+dx, y0+dy, ' ', nil, style)
				}
			}
			if p := b.At(rank, file); p.IsPiece() {
				v.puts(x0+CellWidth/2-1, y0+1, export.Figurine(p), style)
			}
			if n := g[rank][file]; n != 0 {
				v.puts(x0+CellWidth-3, y0, fmt.Sprintf("%+d", n), style)
			}
		}
	}

	v.puts(0, board.Size*CellHeight+1, v.status, tcell.StyleDefault)
	v.screen.Show()
}

func (v *View) puts(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
