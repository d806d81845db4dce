package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap holds the key bindings of the terminal presenter.
// It translates Bubble Tea key messages to game actions and feeds the help line.
type KeyMap struct {
	LeftUp     key.Binding
	LeftDown   key.Binding
	RightUp    key.Binding
	RightDown  key.Binding
	Confirm    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	return KeyMap{
		LeftUp:     binding(cfg.LeftUp, "P1 up"),
		LeftDown:   binding(cfg.LeftDown, "P1 down"),
		RightUp:    binding(cfg.RightUp, "P2 up"),
		RightDown:  binding(cfg.RightDown, "P2 down"),
		Confirm:    binding(cfg.Confirm, "start"),
		Quit:       binding(cfg.Quit, "quit"),
		Screenshot: binding([]string{"ctrl+s"}, "screenshot"),
	}
}

func binding(keys []string, desc string) key.Binding {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = displayName(k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// displayName returns a short label for a key in the help line.
func displayName(k string) string {
	switch k {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	default:
		return k
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Confirm, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown},
		{k.Confirm, k.Screenshot, k.Quit},
	}
}

// Action maps a key message to a game action, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.LeftUp):
		return core.ActionLeftUp
	case key.Matches(msg, k.LeftDown):
		return core.ActionLeftDown
	case key.Matches(msg, k.RightUp):
		return core.ActionRightUp
	case key.Matches(msg, k.RightDown):
		return core.ActionRightDown
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	default:
		return core.ActionNone
	}
}
