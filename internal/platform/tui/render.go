package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// palette maps core colors to ANSI 256 codes. ColorDefault is absent and
// leaves the terminal's own color in place.
var palette = map[core.Color]lipgloss.Color{
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

// pen is the foreground/background pair shared by a run of cells.
type pen struct {
	fg, bg core.Color
}

// pens holds one style per color pair. Built once and only read afterwards,
// so concurrent SSH sessions can share it.
var pens = buildPens()

func buildPens() map[pen]lipgloss.Style {
	styles := make(map[pen]lipgloss.Style)
	for fg := core.ColorDefault; fg <= core.ColorGray; fg++ {
		for bg := core.ColorDefault; bg <= core.ColorGray; bg++ {
			style := lipgloss.NewStyle()
			if code, ok := palette[fg]; ok {
				style = style.Foreground(code)
			}
			if code, ok := palette[bg]; ok {
				style = style.Background(code)
			}
			styles[pen{fg: fg, bg: bg}] = style
		}
	}
	return styles
}

func penOf(c core.Cell) pen {
	return pen{fg: c.Color, bg: c.Bg}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into runs of cells drawn with the same pen, and every run
// is styled once.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		for x := 0; x < s.Width(); {
			p := penOf(s.GetCell(x, y))
			run.Reset()
			for ; x < s.Width() && penOf(s.GetCell(x, y)) == p; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(pens[p].Render(run.String()))
		}
	}
	return sb.String()
}
