package core

// Color identifies the visual role of a screen cell.
// The platform layer resolves roles to terminal colors through the theme,
// so games never deal with ANSI codes directly.
type Color uint8

// Color roles used by the renderer.
const (
	ColorDefault Color = iota
	ColorPaddle
	ColorPuck
	ColorNet
	ColorScore
	ColorTitle
	ColorText
	ColorHighlight
)

// String returns the theme key for the color role.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorPaddle:
		return "paddle"
	case ColorPuck:
		return "puck"
	case ColorNet:
		return "net"
	case ColorScore:
		return "score"
	case ColorTitle:
		return "title"
	case ColorText:
		return "text"
	case ColorHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}
