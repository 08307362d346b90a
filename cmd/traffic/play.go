package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-traffic/internal/core"
	"github.com/vovakirdan/tui-traffic/internal/game"
	"github.com/vovakirdan/tui-traffic/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start an interactive round in the terminal.

Controls:
  Left/A/H        - Steer left
  Right/D/L       - Steer right
  R/Enter/click   - Restart (after game over)
  Ctrl+S          - Save a text screenshot
  Q/Ctrl+C        - Quit

The terminal owns stdout while playing, so logs are discarded unless
--log-file is set.

Examples:
  traffic play
  traffic play --fps 30
  traffic play --config ./my-traffic.yaml --log-file traffic.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, catalog, err := loadResources()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	session := game.NewSession(cfg, flagSeed, logger)
	logger.Info("starting round", "seed", session.Seed, "width", width, "height", height)

	runErr := tui.Run(tui.Options{
		Session: session,
		Catalog: catalog,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     session.Seed,
		},
		Logger: logger,
	})

	logger.Info("session ended", "score", session.Round.Score(), "status", session.Round.Status())
	//nolint:errcheck // Best-effort close on exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
