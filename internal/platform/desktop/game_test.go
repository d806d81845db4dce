package desktop

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

type fakeInput struct {
	down    map[ebiten.Key]bool
	just    map[ebiten.Key]bool
	x, y    int
	clicked bool
}

func (f *fakeInput) KeyPressed(k ebiten.Key) bool     { return f.down[k] }
func (f *fakeInput) KeyJustPressed(k ebiten.Key) bool { return f.just[k] }
func (f *fakeInput) Cursor() (int, int)               { return f.x, f.y }
func (f *fakeInput) ClickJustPressed() bool           { return f.clicked }

type recordSink struct {
	cues []pong.Cue
}

func (r *recordSink) Play(c pong.Cue) {
	r.cues = append(r.cues, c)
}

func newTestWindow(src *fakeInput, sink cueSink) (*Window, *pong.Game) {
	g := pong.New()
	g.Reset(core.RuntimeConfig{Seed: 5, TickRate: 60})
	return newWindow(g, src, sink, log.New(io.Discard)), g
}

func TestReadInput(t *testing.T) {
	src := &fakeInput{
		down:    map[ebiten.Key]bool{ebiten.KeyW: true, ebiten.KeyArrowDown: true},
		just:    map[ebiten.Key]bool{ebiten.KeyEnter: true},
		x:       400,
		y:       430,
		clicked: true,
	}

	in := readInput(src)
	for _, a := range []core.Action{core.ActionLeftUp, core.ActionRightDown, core.ActionConfirm, core.ActionClick} {
		if !in.Has(a) {
			t.Errorf("readInput() missing %v", a)
		}
	}
	for _, a := range []core.Action{core.ActionLeftDown, core.ActionRightUp, core.ActionQuit} {
		if in.Has(a) {
			t.Errorf("readInput() has unexpected %v", a)
		}
	}
	if p, ok := in.Pointer(); !ok || p.X != 400 || p.Y != 430 {
		t.Errorf("Pointer() = %+v, %v", p, ok)
	}
}

func TestWindowClickStart(t *testing.T) {
	src := &fakeInput{x: 400, y: 430, clicked: true}
	w, g := newTestWindow(src, nil)

	if err := w.Update(); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if g.State() != pong.StatePlaying {
		t.Errorf("State() = %v, expected Playing", g.State())
	}
}

func TestWindowExitTerminates(t *testing.T) {
	src := &fakeInput{x: 400, y: 500, clicked: true}
	w, _ := newTestWindow(src, nil)

	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, expected ebiten.Termination", err)
	}
}

func TestWindowQuitKey(t *testing.T) {
	src := &fakeInput{just: map[ebiten.Key]bool{ebiten.KeyEscape: true}}
	w, _ := newTestWindow(src, nil)

	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, expected ebiten.Termination", err)
	}
}

func TestWindowPlaysCues(t *testing.T) {
	src := &fakeInput{just: map[ebiten.Key]bool{ebiten.KeyEnter: true}}
	sink := &recordSink{}
	w, _ := newTestWindow(src, sink)

	if err := w.Update(); err != nil {
		t.Fatal(err)
	}
	src.just = nil

	// The puck reaches a wall, a paddle or an edge well within 200 ticks.
	for i := 0; i < 200 && len(sink.cues) == 0; i++ {
		if err := w.Update(); err != nil {
			t.Fatal(err)
		}
	}
	want := w.frame.Cues()
	if len(want) == 0 || len(sink.cues) != len(want) || sink.cues[0] != want[0] {
		t.Errorf("played cues = %v, frame cues = %v", sink.cues, want)
	}
}

func TestLayout(t *testing.T) {
	w, _ := newTestWindow(&fakeInput{}, nil)
	if gw, gh := w.Layout(1600, 1200); gw != 800 || gh != 600 {
		t.Errorf("Layout() = %dx%d, expected 800x600", gw, gh)
	}
}

func TestLabelStyle(t *testing.T) {
	if size, _ := labelStyle(true); size != hoverSize {
		t.Errorf("hovered size = %v, expected %v", size, hoverSize)
	}
	if size, _ := labelStyle(false); size != buttonSize {
		t.Errorf("idle size = %v, expected %v", size, buttonSize)
	}
}
