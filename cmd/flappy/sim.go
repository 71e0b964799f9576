package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagTicks     int
	flagDT        float64
	flagFlapEvery int
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted headless session",
	Long: `Run the engine without a terminal UI. The bot presses start whenever
no run is in progress and flaps every --flap-every ticks. Events are logged to
stderr and a summary is printed at the end.

Examples:
  flappy sim
  flappy sim --ticks 6000 --dt 0.02 --flap-every 15 --seed 7
  flappy sim --log-level debug --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().Float64Var(&flagDT, "dt", 1.0/60, "Seconds per tick")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 20, "Flap every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the session for replay")
}

func runSim(cmd *cobra.Command, args []string) {
	if flagTicks <= 0 || flagDT <= 0 {
		fatal("--ticks and --dt must be positive")
	}

	logger, err := newLogger(os.Stderr, "flappy-sim")
	if err != nil {
		fatal("%v", err)
	}

	cfg := loadConfig(logger)
	seed := resolveSeed()
	game, err := flappy.NewSeeded(cfg, seed)
	if err != nil {
		fatal("%v", err)
	}
	rec := storage.NewRecorder(seed, cfg)

	clock := core.FixedClock{Step: flagDT}
	var stats flappy.Stats
	for i := 0; i < flagTicks; i++ {
		in := core.NewInputFrame()
		if game.State() != core.StatePlaying {
			in.Set(core.ActionStart)
		}
		if flagFlapEvery > 0 && i%flagFlapEvery == 0 {
			in.Set(core.ActionFlap)
		}

		events := game.Advance(clock, in)
		rec.Record(clock.Delta(), in)
		stats.Observe(events)
		logEvents(logger, game, i, events)
	}

	printSummary(cmd.OutOrStdout(), seed, game, stats)

	if flagSimRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fatal("opening recordings database: %v", err)
		}
		defer store.Close()

		id, err := store.SaveRecording(rec.Recording())
		if err != nil {
			fatal("saving recording: %v", err)
		}
		logger.Info("recording saved", "id", id, "ticks", rec.Len())
	}
}

// logEvents writes one tick's events: transitions at info, the rest at debug.
func logEvents(logger *log.Logger, g *flappy.Game, tick int, events []core.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case core.StateChanged:
			kv := []any{"tick", tick, "from", ev.From, "to", ev.To, "score", g.DisplayScore()}
			if ev.To == core.StateGameOver {
				kv = append(kv, "hit", g.LastCollision().Kind)
			}
			logger.Info("state changed", kv...)
		default:
			logger.Debug("event", "tick", tick, "event", ev)
		}
	}
}

// printSummary reports what happened in a session.
func printSummary(w io.Writer, seed int64, g *flappy.Game, s flappy.Stats) {
	fmt.Fprintf(w, "Session summary (seed %d)\n", seed)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-12s  %d\n", "Ticks", s.Ticks)
	fmt.Fprintf(w, "  %-12s  %d\n", "Runs", s.Runs)
	fmt.Fprintf(w, "  %-12s  %d\n", "Game overs", s.GameOvers)
	fmt.Fprintf(w, "  %-12s  %d\n", "Flaps", s.Flaps)
	fmt.Fprintf(w, "  %-12s  %d\n", "Pipes", s.Spawned/2)
	fmt.Fprintf(w, "  %-12s  %d\n", "Best score", s.MaxScore)
	fmt.Fprintf(w, "  %-12s  %s\n", "Final state", g.State())
	if c := g.LastCollision(); c.Kind != flappy.CollisionNone {
		fmt.Fprintf(w, "  %-12s  %s\n", "Last hit", c.Kind)
	}
}
