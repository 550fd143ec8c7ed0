package ui

import (
	"github.com/hailam/chessheat/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler manages mouse and keyboard input.
type InputHandler struct {
	mouseX, mouseY  int // Logical coordinates (unscaled)
	leftJustPressed bool
	scale           float64
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{scale: 1.0}
}

// SetScale sets the HiDPI factor between cursor and logical coordinates.
func (ih *InputHandler) SetScale(scale float64) {
	if scale < 1.0 {
		scale = 1.0
	}
	ih.scale = scale
}

// Update updates the input state. Call this once per frame.
func (ih *InputHandler) Update() {
	// Raw cursor position is in scaled space
	rawX, rawY := ebiten.CursorPosition()
	ih.mouseX = int(float64(rawX) / ih.scale)
	ih.mouseY = int(float64(rawY) / ih.scale)

	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		ih.mouseX = int(float64(x) / ih.scale)
		ih.mouseY = int(float64(y) / ih.scale)
		ih.leftJustPressed = true
	}
}

// IsLeftJustPressed returns true if the left mouse button was just pressed
// or the screen was just touched.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// CellAt returns the board square under the pointer.
func (ih *InputHandler) CellAt(cellSize int) (file, rank int, ok bool) {
	return board.CellAt(ih.mouseX, ih.mouseY, cellSize)
}

// IsKeyJustPressed returns true if the specified key was just pressed.
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
