package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cfrs-studio/internal/export"
	"github.com/vovakirdan/cfrs-studio/internal/lang"
)

// colorStyles maps canvas colors to lipgloss background styles.
// Each cell renders as two background-colored spaces so pixels come
// out roughly square in a terminal.
var colorStyles = func() map[lang.Color]lipgloss.Style {
	styles := make(map[lang.Color]lipgloss.Style, 8)
	for c := lang.White; c <= lang.Yellow; c++ {
		rgb := export.RGBA(c)
		hex := fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
		styles[c] = lipgloss.NewStyle().Background(lipgloss.Color(hex))
	}
	return styles
}()

// RenderBuffer converts a canvas to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderBuffer(buf *lang.Buffer) string {
	var sb strings.Builder
	sb.Grow(buf.W * buf.H * 4)

	for y := 0; y < buf.H; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < buf.W {
			start, _ := buf.Get(x, y)

			// Collect consecutive cells with the same color
			run := 0
			for x < buf.W {
				c, _ := buf.Get(x, y)
				if c != start {
					break
				}
				run++
				x++
			}

			sb.WriteString(colorStyles[start].Render(strings.Repeat("  ", run)))
		}
	}
	return sb.String()
}
