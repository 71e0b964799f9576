// flappy is a terminal Flappy Bird built on a tick-driven simulation engine.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy sim               - Run a scripted headless session
//	flappy replays           - List recorded sessions
//	flappy replay <id>       - Re-simulate a recorded session
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.arcade/configs, ./configs)
//	--seed <value>      - RNG seed for reproducible pipes (0 = time-based)
//	--db <path>         - Recordings database (default: ~/.arcade/recordings.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy is a terminal rendition of Flappy Bird. The simulation is
deterministic for a given seed, so sessions can be recorded and replayed.

Available commands:
  play     - Play interactively
  sim      - Run a scripted headless session and print a summary
  replays  - List recorded sessions
  replay   - Re-simulate a recorded session
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --seed 42 --record
  flappy sim --ticks 6000 --flap-every 18
  flappy replays
  flappy replay 3
  flappy config --format toml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/recordings.db", "Path to recordings database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// fatal prints an error in the CLI's format and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
