package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-chessboard/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
// ColorDefault has no entry and leaves the terminal color alone.
var colorCodes = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBlack:        "0",
	core.ColorBrightRed:    "9",
	core.ColorBrightYellow: "11",
	core.ColorBrightBlue:   "12",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
	core.ColorDarkGray:     "238",
	core.ColorTan:          "180",
	core.ColorBrown:        "94",
}

type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per foreground/background pair.
// It is not safe for concurrent use; every model owns its own.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) style(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if s, ok := c[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if code, ok := colorCodes[fg]; ok {
		s = s.Foreground(lipgloss.Color(code))
	}
	if code, ok := colorCodes[bg]; ok {
		s = s.Background(lipgloss.Color(code))
	}
	c[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, make(styleCache))
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != first.Fg || cell.Bg != first.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if first.Fg == core.ColorDefault && first.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.style(first.Fg, first.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
