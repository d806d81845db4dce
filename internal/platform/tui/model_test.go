package tui

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

func newTestModel(t *testing.T) (Model, *pong.Game) {
	t.Helper()
	game := pong.New()
	m := NewModel(game, Options{
		Config:        config.Default(),
		Runtime:       core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42},
		ScreenshotDir: t.TempDir(),
	})
	t.Cleanup(m.bell.Close)
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelConfirmStartsGame(t *testing.T) {
	m, game := newTestModel(t)

	m, _ = update(t, m, keyMsg("enter"))
	m, cmd := update(t, m, TickMsg(time.Now()))

	if game.State() != pong.StatePlaying {
		t.Errorf("State() = %v, expected Playing", game.State())
	}
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
}

func TestModelClickStart(t *testing.T) {
	m, game := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 16, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg(time.Now()))

	if game.State() != pong.StatePlaying {
		t.Errorf("State() = %v, expected Playing after clicking Start", game.State())
	}
}

func TestModelHoverHighlights(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 19, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	m, _ = update(t, m, TickMsg(time.Now()))

	if !strings.Contains(m.View(), "> Exit <") {
		t.Errorf("hovered Exit not highlighted:\n%s", m.View())
	}
}

func TestModelExitClickQuits(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 19, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd := update(t, m, TickMsg(time.Now()))

	if !isQuit(cmd) {
		t.Error("exit click did not quit")
	}
	if m.View() != "" {
		t.Error("View() not empty after quitting")
	}
}

func TestModelQuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := update(t, m, keyMsg("q"))
	if !isQuit(cmd) {
		t.Error("q did not quit")
	}
}

func TestModelHeldKeyMovesPaddle(t *testing.T) {
	m, game := newTestModel(t)

	m, _ = update(t, m, keyMsg("enter"))
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, keyMsg("w"))
	m, _ = update(t, m, TickMsg(time.Now()))
	update(t, m, TickMsg(time.Now()))

	// One press is held for the configured window, which spans both ticks.
	if got := game.Frame().Left.Y; got != 300-2*pong.PaddleSpeed {
		t.Errorf("left paddle Y = %v, expected %v", got, 300-2*pong.PaddleSpeed)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, game := newTestModel(t)
	m, _ = update(t, m, keyMsg("enter"))
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.State() != pong.StatePlaying {
		t.Errorf("resize reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t)

	update(t, m, keyMsg("ctrl+s"))

	entries, err := os.ReadDir(m.shotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "pong_") {
		t.Fatalf("screenshot dir = %v, expected one pong_*.txt", entries)
	}
}

func TestModelViewHasHelp(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "Pong") {
		t.Errorf("View() missing title")
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("View() missing help line")
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestBellRingsPerCue(t *testing.T) {
	var out syncBuffer
	b := NewBell(&out)
	defer b.Close()

	b.Play(pong.CuePaddleHit)
	b.Play(pong.CueMiss)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) && out.String() != "\a\a\a" {
		time.Sleep(time.Millisecond)
	}
	if got := out.String(); got != "\a\a\a" {
		t.Errorf("bell output = %q, expected three bells", got)
	}
}

func TestBellClosedIsSilent(t *testing.T) {
	var out syncBuffer
	b := NewBell(&out)
	b.Close()
	b.Close()
	b.Play(pong.CueWallHit)

	time.Sleep(10 * time.Millisecond)
	if out.String() != "" {
		t.Errorf("closed bell wrote %q", out.String())
	}

	var nilBell *Bell
	nilBell.Play(pong.CueMiss)
}
