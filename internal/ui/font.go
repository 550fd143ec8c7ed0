package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	// Font sources for text rendering
	boldSource *text.GoTextFaceSource
	monoSource *text.GoTextFaceSource
)

func init() {
	initFonts()
}

func initFonts() {
	var err error
	boldSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Failed to load bold font: %v", err)
	}
	monoSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		log.Printf("Failed to load mono font: %v", err)
	}
}

// countFace returns the face used for attack counts, sized for a cell.
func countFace(cellSize int, scale float64) *text.GoTextFace {
	if monoSource == nil {
		return nil
	}
	return &text.GoTextFace{
		Source: monoSource,
		Size:   float64(cellSize) / 4 * scale,
	}
}

// statusFace returns the face used for the status line.
func statusFace(scale float64) *text.GoTextFace {
	if boldSource == nil {
		return nil
	}
	return &text.GoTextFace{
		Source: boldSource,
		Size:   12 * scale,
	}
}
