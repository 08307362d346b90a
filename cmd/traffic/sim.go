package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-traffic/internal/config"
	"github.com/vovakirdan/tui-traffic/internal/game"
)

var (
	flagFrames int
	flagSteer  string
	flagTrace  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless round",
	Long: `Run a round without a terminal at a fixed frame rate and print the result.

The steering script is a comma-separated list of steps, repeated until the
run ends. Each step is a direction followed by a frame count:
  L  - hold left
  R  - hold right
  B  - hold both (right wins)
  N  - hold nothing

The run stops at game over or after --frames frames. With the same seed the
result is identical on every run.

Examples:
  traffic sim --seed 7
  traffic sim --seed 7 --frames 600 --steer L30,R30,N10
  traffic sim --seed 7 --trace`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames to run")
	simCmd.Flags().StringVar(&flagSteer, "steer", "", "Steering script, e.g. L30,R15,N10")
	simCmd.Flags().BoolVar(&flagTrace, "trace", false, "Log every spawn and scored car")
}

// simOptions configures a headless run.
type simOptions struct {
	Config config.TrafficConfig
	Seed   int64
	Frames int
	FPS    int
	Steer  string
}

// simResult summarizes a headless run.
type simResult struct {
	Seed     int64
	Frames   int
	Score    int
	Spawned  int
	Enemies  int
	GameOver bool
}

// simulate runs frames at a fixed delta until game over or the frame limit.
func simulate(opts simOptions, logger *log.Logger) (simResult, error) {
	script, err := game.ParseSteer(opts.Steer)
	if err != nil {
		return simResult{}, err
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	dt := time.Second / time.Duration(fps)

	session := game.NewSession(opts.Config, opts.Seed, logger)
	frames := 0
	for frames < opts.Frames && !session.GameOver() {
		session.Frame(dt, script.Input(frames))
		frames++
	}

	round := session.Round.Round()
	return simResult{
		Seed:     session.Seed,
		Frames:   frames,
		Score:    round.Score,
		Spawned:  round.SpawnTicks,
		Enemies:  len(session.Round.Enemies()),
		GameOver: session.GameOver(),
	}, nil
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagTrace {
		flagDebug = true
	}
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	res, err := simulate(simOptions{
		Config: cfg,
		Seed:   flagSeed,
		Frames: flagFrames,
		FPS:    flagFPS,
		Steer:  flagSteer,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printSimResult(os.Stdout, res)
}

func printSimResult(w io.Writer, res simResult) {
	status := "active"
	if res.GameOver {
		status = "over"
	}
	fmt.Fprintf(w, "seed:    %d\n", res.Seed)
	fmt.Fprintf(w, "frames:  %d\n", res.Frames)
	fmt.Fprintf(w, "status:  %s\n", status)
	fmt.Fprintf(w, "score:   %d\n", res.Score)
	fmt.Fprintf(w, "spawned: %d\n", res.Spawned)
	fmt.Fprintf(w, "on road: %d\n", res.Enemies)
}
