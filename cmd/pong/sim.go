package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

var flagTicks int

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Start a match and let the puck play out with idle paddles.

Prints the final frame and a summary of the events. With --seed the run is
reproducible.

Examples:
  pong sim
  pong sim --ticks 10000 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
}

// simResult summarizes a simulation run.
type simResult struct {
	Seed   int64
	Ticks  uint64
	Final  pong.Frame
	Counts map[string]int
}

// simulate presses start, then ticks with no paddle input until ticks have
// run or the match is over.
func simulate(seed int64, ticks int, logger *log.Logger) simResult {
	s := pong.NewSession(seed)
	res := simResult{Seed: seed, Counts: make(map[string]int)}

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	for i := 0; i < ticks; i++ {
		res.Final = pong.Tick(s, in)
		in.Clear()
		for _, e := range res.Final.Events {
			key := e.Kind.String()
			if e.Kind == pong.EventSound {
				key = e.Cue.String()
			}
			res.Counts[key]++
			logger.Debug("event", "event", e)
		}
		if res.Final.State == pong.StateGameOver {
			break
		}
	}
	res.Ticks = s.Ticks()
	return res
}

// summaryTable lays out the event counts.
func summaryTable(res simResult) string {
	columns := []table.Column{
		{Title: "Event", Width: 14},
		{Title: "Count", Width: 8},
	}
	keys := []string{
		pong.CuePaddleHit.String(),
		pong.CueWallHit.String(),
		pong.CueMiss.String(),
		pong.EventScored.String(),
		pong.EventStateChanged.String(),
	}
	rows := make([]table.Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, table.Row{k, fmt.Sprintf("%d", res.Counts[k])})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)
	return t.View()
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagTicks < 1 {
		return fmt.Errorf("sim: --ticks must be positive, got %d", flagTicks)
	}

	logger, closeLog, err := newLogger(cfg.Log, os.Stderr, "pong-sim")
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	res := simulate(seed, flagTicks, logger)
	logger.Info("simulation finished", "seed", res.Seed, "ticks", res.Ticks, "elapsed", time.Since(start))

	writeSim(cmd.OutOrStdout(), res)
	return nil
}

func writeSim(w io.Writer, res simResult) {
	screen := core.NewScreen(80, 24)
	pong.Render(screen, res.Final)

	left, right := res.Final.Scores()
	fmt.Fprintln(w, screen.String())
	fmt.Fprintf(w, "\nseed %d, %d ticks, state %s, score %d - %d\n\n", res.Seed, res.Ticks, res.Final.State, left, right)
	fmt.Fprintln(w, summaryTable(res))
}
