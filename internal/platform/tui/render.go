package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/globegif/internal/render"
)

// paletteStyles maps each palette index to a lipgloss style so the
// preview shows the same colors as the encoded GIF.
var paletteStyles = buildPaletteStyles()

func buildPaletteStyles() []lipgloss.Style {
	pal := render.Palette()
	styles := make([]lipgloss.Style, len(pal))
	for i, c := range pal {
		r, g, b, _ := c.RGBA()
		hex := fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return styles
}

// RenderFrame converts a row-major palette-index buffer to a styled
// string for display. Each pixel becomes two block characters so cells
// come out roughly square, and adjacent same-color pixels are grouped
// to minimize ANSI escape sequences.
func RenderFrame(buf []byte, width, height int) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(width*height*4 + height)

	for y := 0; y < height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < width {
			start := buf[y*width+x]

			// Collect consecutive pixels with the same palette index
			var run strings.Builder
			for x < width && buf[y*width+x] == start {
				run.WriteString("██")
				x++
			}

			idx := int(start)
			if idx >= len(paletteStyles) {
				idx = render.Background
			}
			sb.WriteString(paletteStyles[idx].Render(run.String()))
		}
	}
	return sb.String()
}
