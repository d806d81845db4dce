package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab", core.ColorScore)
	s.DrawText(2, 0, "cd", core.ColorText)
	s.SetColor(9, 1, 'x', core.ColorPuck)

	out := RenderScreen(s, NewTheme(nil, config.Default().Theme))
	plain := stripANSI(out)

	lines := strings.Split(plain, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	if lines[0] != "abcd      " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "         x" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestNewThemeCoversRoles(t *testing.T) {
	theme := NewTheme(lipgloss.DefaultRenderer(), config.ThemeConfig{})
	for _, role := range append([]core.Color{core.ColorDefault}, colorRoles...) {
		if _, ok := theme[role]; !ok {
			t.Errorf("theme missing role %v", role)
		}
	}
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
