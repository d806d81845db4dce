// pong is a two-player Pong game for the terminal, SSH and the desktop.
//
// Usage:
//
//	pong play     - Play in this terminal
//	pong window   - Play in a desktop window
//	pong serve    - Host the game over SSH
//	pong sim      - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default from config: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a specific config file
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Two-player Pong in your terminal",
	Long: `Classic two-player Pong. The first player to 21 points wins.

Controls:
  W/S        - Player 1 (left paddle)
  Up/Down    - Player 2 (right paddle)
  Enter      - Start / restart
  Mouse      - Click the menu buttons
  Q/Esc      - Quit

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Host the game over SSH
  sim      - Run a headless simulation

Examples:
  pong play
  pong play --seed 42 --log-file pong.log --log-level debug
  pong window
  pong serve --ssh :2222
  pong sim --ticks 5000`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS > 0 {
		cfg.Play.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg, cfg.Validate()
}

// runtimeConfig builds the runtime settings for a game.
func runtimeConfig(cfg config.Config, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Play.TickRate,
		Seed:     flagSeed,
	}
}
