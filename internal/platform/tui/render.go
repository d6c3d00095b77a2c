package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// palette maps core.Color to ANSI 256-color codes. Index 0 is the
// terminal default and is written unstyled.
var palette = [...]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// styles is built once from palette. Bright colors are bold so tiles
// stand out against the board frame.
var styles = func() []lipgloss.Style {
	out := make([]lipgloss.Style, len(palette))
	for i, c := range palette {
		s := lipgloss.NewStyle()
		if c != "" {
			s = s.Foreground(c)
		}
		if core.Color(i).Bright() {
			s = s.Bold(true)
		}
		out[i] = s
	}
	return out
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Consecutive cells of one color share an escape sequence; blank and
// default-colored runs are written as-is.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(paint(color, run.String()))
		}
	}
	return sb.String()
}

func paint(c core.Color, text string) string {
	if c == core.ColorDefault || int(c) >= len(styles) || strings.TrimSpace(text) == "" {
		return text
	}
	return styles[c].Render(text)
}
