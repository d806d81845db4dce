// Package desktop runs pong in a desktop window with Ebitengine.
// The window's logical size is the 800x600 board, so the mouse and the
// renderer work in board units directly.
package desktop

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// cueSink receives sound cues.
type cueSink interface {
	Play(c pong.Cue)
}

// Window is the ebiten.Game driving a pong.Game.
type Window struct {
	game   *pong.Game
	input  inputSource
	sound  cueSink
	logger *log.Logger
	frame  pong.Frame
}

func newWindow(game *pong.Game, input inputSource, sound cueSink, logger *log.Logger) *Window {
	return &Window{
		game:   game,
		input:  input,
		sound:  sound,
		logger: logger,
		frame:  game.Frame(),
	}
}

// Update runs one tick. Ebitengine calls it at the configured TPS.
func (w *Window) Update() error {
	in := readInput(w.input)
	if in.Has(core.ActionQuit) {
		w.logger.Info("session ended", "reason", "quit key")
		return ebiten.Termination
	}

	w.frame = w.game.Step(in)
	for _, e := range w.frame.Events {
		switch e.Kind {
		case pong.EventSound:
			if w.sound != nil {
				w.sound.Play(e.Cue)
			}
		case pong.EventScored:
			left, right := w.frame.Scores()
			w.logger.Debug("point", "side", e.Side, "left", left, "right", right)
		case pong.EventStateChanged:
			w.logger.Info("state changed", "state", e.State, "tick", e.Tick)
		}
	}

	if w.frame.Exit {
		w.logger.Info("session ended", "reason", "exit button")
		return ebiten.Termination
	}
	return nil
}

// Draw renders the last frame.
func (w *Window) Draw(screen *ebiten.Image) {
	drawFrame(screen, w.frame)
}

// Layout fixes the logical screen to the board size.
func (w *Window) Layout(_, _ int) (int, int) {
	return pong.BoardWidth, pong.BoardHeight
}

// Run opens the window and blocks until it is closed or exit is pressed.
func Run(game *pong.Game, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	game.Reset(rt)

	var sound cueSink
	if cfg.Sound.Enabled {
		sound = newSpeaker(cfg.Sound.Volume, logger)
	}

	ebiten.SetWindowSize(int(pong.BoardWidth*cfg.Window.Scale), int(pong.BoardHeight*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(rt.TickRate)

	logger.Info("session started", "seed", game.Seed(), "tick_rate", rt.TickRate)
	if err := ebiten.RunGame(newWindow(game, ebitenInput{}, sound, logger)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
