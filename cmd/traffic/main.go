// traffic is a top-down dodging game for the terminal: steer a car left and
// right while oncoming cars scroll down the road.
//
// Usage:
//
//	traffic play             - Play interactively
//	traffic sim              - Run a headless round and print the result
//	traffic config           - Print the effective configuration
//	traffic sprites          - List the sprite catalog
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible spawns
//	--config <path>    - Use a custom config YAML
//	--sprites <path>   - Use a custom sprite manifest
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-traffic/internal/assets"
	"github.com/vovakirdan/tui-traffic/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagSprites string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "traffic",
	Short: "Traffic - dodge oncoming cars in your terminal",
	Long: `Traffic is a terminal driving game. Steer left and right to avoid the
cars coming down the road; every car that passes scores points.

Available commands:
  play     - Play interactively
  sim      - Run a headless round
  config   - Print the effective configuration
  sprites  - List the sprite catalog

Examples:
  traffic play
  traffic play --seed 42 --log-file traffic.log
  traffic sim --frames 3600 --steer L30,R30
  traffic config > my-traffic.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite manifest YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(spritesCmd)
}

// newLogger builds the command logger. Output goes to the log file when one
// is set, otherwise to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	out := fallback
	closer := func() error { return nil }

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "traffic",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// loadResources loads the configuration and the sprite catalog named by the
// global flags.
func loadResources() (config.TrafficConfig, *assets.Catalog, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	catalog, err := assets.Load(flagSprites)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, catalog, nil
}
