package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Load the configuration the same way 'play' does, validate it and print it.
The output is a complete config file that can be edited and passed to --config.

Examples:
  flappy config > ~/.arcade/configs/flappy.yaml
  flappy config --format toml
  flappy config --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) {
	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		fatal("%v", err)
	}

	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fatal("%v", err)
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data) //nolint:errcheck // Best-effort write to stdout
}
