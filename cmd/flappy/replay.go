package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagLimit  int
	flagDelete int64
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded sessions",
	Long: `Show the most recent sessions saved with 'play --record' or 'sim --record'.

Examples:
  flappy replays
  flappy replays --limit 50
  flappy replays --delete 3`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded session",
	Long: `Re-run a recorded session headlessly with its original seed, config and
inputs, then print the summary. Use --log-level debug to see every event.

Examples:
  flappy replay 3
  flappy replay 3 --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of recordings to list")
	replaysCmd.Flags().Int64Var(&flagDelete, "delete", 0, "Delete the recording with this ID instead of listing")
}

func runReplays(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening recordings database: %v", err)
	}
	defer store.Close()

	if flagDelete != 0 {
		if err := deleteRecording(cmd.OutOrStdout(), store, flagDelete); err != nil {
			fatal("%v", err)
		}
		return
	}

	infos, err := store.ListRecordings(flagLimit)
	if err != nil {
		fatal("%v", err)
	}

	if len(infos) == 0 {
		fmt.Println("No recordings yet.")
		fmt.Println()
		fmt.Println("Run 'flappy play --record' to save one.")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-7s  %-9s  %s\n", "ID", "Seed", "Ticks", "Duration", "Date")
	fmt.Printf("  %-4s  %-20s  %-7s  %-9s  %s\n", "--", "----", "-----", "--------", "----")
	for _, info := range infos {
		fmt.Printf("  %-4d  %-20d  %-7d  %-9s  %s\n",
			info.ID, info.Seed, info.Ticks,
			fmt.Sprintf("%.1fs", info.Duration),
			info.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// deleteRecording removes one recording and reports it to w.
func deleteRecording(w io.Writer, store *storage.Store, id int64) error {
	err := store.DeleteRecording(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no recording with id %d (see 'flappy replays')", id)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted recording #%d.\n", id)
	return nil
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fatal("invalid recording id %q", args[0])
	}

	logger, err := newLogger(os.Stderr, "flappy-replay")
	if err != nil {
		fatal("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening recordings database: %v", err)
	}
	defer store.Close()

	rec, err := store.Recording(id)
	if errors.Is(err, storage.ErrNotFound) {
		fatal("no recording with id %d (see 'flappy replays')", id)
	}
	if err != nil {
		fatal("%v", err)
	}

	logger.Info("replaying", "id", rec.ID, "seed", rec.Seed, "ticks", len(rec.Frames))

	game, stats, err := rec.Replay(func(tick int, events []core.Event) {
		for _, e := range events {
			if sc, ok := e.(core.StateChanged); ok {
				logger.Info("state changed", "tick", tick, "from", sc.From, "to", sc.To)
				continue
			}
			logger.Debug("event", "tick", tick, "event", e)
		}
	})
	if err != nil {
		fatal("%v", err)
	}

	printSummary(cmd.OutOrStdout(), rec.Seed, game, stats)
}
