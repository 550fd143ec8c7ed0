package style

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// Respect https://no-color.org/.
var noColor = os.Getenv("NO_COLOR") != ""

// SupportsColor reports whether escape sequences should be written to w.
// Only terminals qualify; files and pipes get plain text.
func SupportsColor(w io.Writer) bool {
	if noColor {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func doS(ms []int) string {
	if len(ms) == 0 {
		return "\033[0m"
	}
	var b strings.Builder
	_, _ = b.WriteString("\033[")
	for i, m := range ms {
		if i != 0 {
			_ = b.WriteByte(';')
		}
		_, _ = b.WriteString(strconv.FormatInt(int64(m), 10))
	}
	_ = b.WriteByte('m')
	return b.String()
}

// S returns the escape sequence for ms when enabled, "" otherwise.
func S(enabled bool, ms ...int) string {
	if enabled {
		return doS(ms)
	}
	return ""
}

func WithS(enabled bool, s string, ms ...int) string {
	return S(enabled, ms...) + s + S(enabled)
}

// RGB returns the SGR parameters for a 24-bit foreground color.
func RGB(r, g, b uint8) []int { return []int{38, 2, int(r), int(g), int(b)} }

// BgRGB returns the SGR parameters for a 24-bit background color.
func BgRGB(r, g, b uint8) []int { return []int{48, 2, int(r), int(g), int(b)} }
