package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a two-player game in this terminal.

Both players share the keyboard. Terminals do not report key releases, so
a paddle keeps moving for a short while (play.hold_ms) after its key's last
press or auto-repeat. Ctrl+S saves a screenshot to ~/.pong/screenshots.

Logs go to --log-file (nothing is logged by default while the game owns
the terminal).

Examples:
  pong play
  pong play --fps 30
  pong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, io.Discard, "pong")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	var bell io.Writer
	if cfg.Sound.Enabled {
		bell = os.Stderr
	}

	return tui.Run(pong.New(), tui.Options{
		Config:  cfg,
		Runtime: runtimeConfig(cfg, width, height),
		Logger:  logger,
		Bell:    bell,
	})
}
