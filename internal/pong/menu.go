package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Button identifies a clickable menu entry.
type Button int

const (
	ButtonNone Button = iota
	ButtonStart
	ButtonRestart
	ButtonExit
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonStart:
		return "Start"
	case ButtonRestart:
		return "Restart"
	case ButtonExit:
		return "Exit"
	default:
		return "None"
	}
}

// MenuButton is a button with its hit box in board units.
type MenuButton struct {
	Button Button
	Label  string
	Box    core.Box
	states []State
}

// VisibleIn reports whether the button is shown on the given screen.
func (m MenuButton) VisibleIn(s State) bool {
	for _, st := range m.states {
		if st == s {
			return true
		}
	}
	return false
}

var (
	primaryBox = core.Box{X: BoardWidth/2 - 80, Y: BoardHeight/2 + 115, W: 160, H: 35}
	exitBox    = core.Box{X: BoardWidth/2 - 50, Y: BoardHeight/2 + 185, W: 100, H: 40}
)

// menuButtons lists every menu button in display order.
var menuButtons = []MenuButton{
	{Button: ButtonStart, Label: "Start", Box: primaryBox, states: []State{StateStartMenu}},
	{Button: ButtonRestart, Label: "Restart", Box: primaryBox, states: []State{StateGameOver}},
	{Button: ButtonExit, Label: "Exit", Box: exitBox, states: []State{StateStartMenu, StateGameOver}},
}

// Buttons returns the buttons shown on the given screen, top to bottom.
func Buttons(s State) []MenuButton {
	var out []MenuButton
	for _, b := range menuButtons {
		if b.VisibleIn(s) {
			out = append(out, b)
		}
	}
	return out
}

// ButtonAt returns the button under p on the given screen, or ButtonNone.
func ButtonAt(s State, p core.Point) Button {
	for _, b := range menuButtons {
		if b.VisibleIn(s) && b.Box.Contains(p) {
			return b.Button
		}
	}
	return ButtonNone
}

// HoveredButton is ButtonAt for an optional pointer position.
func HoveredButton(s State, p core.Point, ok bool) Button {
	if !ok {
		return ButtonNone
	}
	return ButtonAt(s, p)
}

// primaryButton is the button the confirm key presses on a screen.
func primaryButton(s State) Button {
	switch s {
	case StateStartMenu:
		return ButtonStart
	case StateGameOver:
		return ButtonRestart
	default:
		return ButtonNone
	}
}
