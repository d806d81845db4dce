package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// colorRoles lists every role a theme can style.
var colorRoles = []core.Color{
	core.ColorPaddle,
	core.ColorPuck,
	core.ColorNet,
	core.ColorScore,
	core.ColorTitle,
	core.ColorText,
	core.ColorHighlight,
}

// Theme maps core.Color roles to lipgloss styles.
type Theme map[core.Color]lipgloss.Style

// NewTheme builds a theme from configured colors using renderer r.
// SSH sessions pass their own renderer so colors match the client terminal.
func NewTheme(r *lipgloss.Renderer, cfg config.ThemeConfig) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	theme := Theme{core.ColorDefault: r.NewStyle()}
	for _, role := range colorRoles {
		style := r.NewStyle()
		if c, ok := cfg.Colors[role.String()]; ok && c != "" {
			style = style.Foreground(lipgloss.Color(c))
		}
		if role == core.ColorTitle || role == core.ColorHighlight {
			style = style.Bold(true)
		}
		theme[role] = style
	}
	return theme
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
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

			style, ok := theme[startColor]
			if !ok {
				style = theme[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
