package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/desktop"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with keyboard and mouse.

Controls:
  W/S        - Player 1 (left paddle)
  Up/Down    - Player 2 (right paddle)
  Enter      - Start / restart
  Esc/Q      - Quit

Window size, title and sound volume come from the window and sound
sections of the config.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, os.Stderr, "pong-window")
	if err != nil {
		return err
	}
	defer closeLog()

	rt := runtimeConfig(cfg, int(pong.BoardWidth), int(pong.BoardHeight))
	return desktop.Run(pong.New(), cfg, rt, logger)
}
