package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderDot renders a single colored status dot
func RenderDot(symbol rune, color [3]uint8) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(rgbToHex(color)))
	return style.Render(string(symbol))
}

// RenderMeter renders an activity meter of width cells, filled to
// level (0-1), colored per cell by the supplied gradient function
func RenderMeter(width int, level float64, cell rune, colorAt func(norm float64) [3]uint8) string {
	if width < 1 {
		return ""
	}
	filled := int(level*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	var out strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			norm := level
			if width > 1 {
				norm = float64(i) / float64(width-1)
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(rgbToHex(colorAt(norm))))
			out.WriteString(style.Render(string(cell)))
		} else {
			out.WriteString(" ")
		}
	}
	return out.String()
}

// RenderLegendItem renders a single legend item: "● name - description"
func RenderLegendItem(symbol rune, color [3]uint8, name, desc string) string {
	return fmt.Sprintf("  %s %s - %s", RenderDot(symbol, color), name, desc)
}

func rgbToHex(c [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
