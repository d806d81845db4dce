package pong

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Game wraps a Session behind the step/render interface used by presenters.
// It remembers the last frame so it can be drawn between ticks.
type Game struct {
	runtime core.RuntimeConfig
	session *Session
	frame   Frame
}

// New creates a Game. Call Reset before the first Step.
func New() *Game {
	g := &Game{}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset starts a fresh session on the start menu.
// A zero seed picks one from the clock.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.runtime = runtime
	g.session = NewSession(runtime.Seed)
	g.frame = g.session.Frame()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) Frame {
	g.frame = Tick(g.session, in)
	return g.frame
}

// Render draws the last frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.frame)
}

// State returns the current screen.
func (g *Game) State() State {
	return g.session.State
}

// Frame returns the last frame produced.
func (g *Game) Frame() Frame {
	return g.frame
}

// Seed returns the seed the current session was started with.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}
