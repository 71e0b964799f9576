package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/audio"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagFPS     int
	flagMute    bool
	flagRecord  bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start an interactive session.

Controls:
  Space/Up/W   - Flap (and start a run)
  Enter        - Start a run
  M            - Mute sound
  ?            - Toggle full help
  Q/Esc/Ctrl+C - Quit

The terminal is taken over by the game, so logs go to --log-file.

Examples:
  flappy play
  flappy play --seed 42 --record
  flappy play --config ./my-flappy.toml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the session for replay")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.arcade/flappy.log", "Where to write logs")
}

func runPlay(cmd *cobra.Command, args []string) {
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fatal("%v", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "flappy")
	if err != nil {
		fatal("%v", err)
	}

	cfg := loadConfig(logger)
	seed := resolveSeed()
	game, err := flappy.NewSeeded(cfg, seed)
	if err != nil {
		fatal("%v", err)
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = seed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW, runtime.ScreenH = w, h
	}

	player := audio.NewPlayer(flagMute)
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
	}
	defer player.Close()

	var rec *storage.Recorder
	if flagRecord {
		rec = storage.NewRecorder(seed, cfg)
	}

	logger.Info("starting", "size", [2]int{runtime.ScreenW, runtime.ScreenH}, "record", flagRecord)
	err = tui.Run(game, tui.Options{
		Runtime:  runtime,
		Logger:   logger,
		Audio:    player,
		Recorder: rec,
	})
	if err != nil {
		fatal("%v", err)
	}

	if rec == nil || rec.Len() == 0 {
		return
	}
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
	fmt.Printf("Saved recording #%d (%d ticks, seed %d). Replay with 'flappy replay %d'.\n", id, rec.Len(), seed, id)
}
