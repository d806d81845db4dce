package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestGameLifecycle(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, TickRate: 60})

	if g.ID() != "pong" || g.Title() != "Pong" {
		t.Errorf("ID()/Title() = %q/%q", g.ID(), g.Title())
	}
	if g.State() != StateStartMenu {
		t.Errorf("State() = %v, expected StartMenu", g.State())
	}
	if g.Seed() != 12345 {
		t.Errorf("Seed() = %d, expected 12345", g.Seed())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	f := g.Step(in)
	if f.State != StatePlaying || g.State() != StatePlaying {
		t.Errorf("State after confirm = %v, expected Playing", f.State)
	}
	if g.Frame().Tick != f.Tick {
		t.Errorf("Frame() is not the last stepped frame")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if screen.Get(40, 0) != NetChar {
		t.Errorf("court not rendered after start")
	}
}

func TestGameResetPicksSeed(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{})
	if g.Seed() == 0 {
		t.Errorf("Seed() = 0 after Reset with zero seed")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 77}
	g1, g2 := New(), New()
	g1.Reset(cfg)
	g2.Reset(cfg)

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	for i := 0; i < 500; i++ {
		f1 := g1.Step(in)
		f2 := g2.Step(in)
		if f1.Puck != f2.Puck {
			t.Fatalf("tick %d puck mismatch: %+v vs %+v", i, f1.Puck, f2.Puck)
		}
		in.Clear()
	}
}
