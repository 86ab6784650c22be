package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/widebird/internal/core"
)

// colorStyles maps palette slots to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorSky:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorGround:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")).Background(lipgloss.Color("52")),
	core.ColorObstacle:  lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	core.ColorPlayer:    lipgloss.NewStyle().Foreground(lipgloss.Color("202")).Bold(true),
	core.ColorSun:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorScore:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	core.ColorPanel:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Background(lipgloss.Color("230")),
	core.ColorHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("202")).Background(lipgloss.Color("230")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
