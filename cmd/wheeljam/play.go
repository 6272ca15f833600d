package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wheeljam/internal/config"
	"github.com/vovakirdan/wheeljam/internal/core"
	"github.com/vovakirdan/wheeljam/internal/games/wheelgame"
	"github.com/vovakirdan/wheeljam/internal/platform/tui"
	"github.com/vovakirdan/wheeljam/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a puzzle",
	Long: `Start a wheel puzzle in this terminal.

Controls:
  W/A/S/D, arrows  - Move the selector
  Space/Enter      - Pick the selected quadrant
  R                - Spin the ring without picking
  N                - New puzzle
  Ctrl+S           - Save a screenshot to ~/.wheeljam/screenshots
  Q/Ctrl+C         - Quit

Finished puzzles are recorded in the history database.
Logs go to stderr; redirect them when raising --log-level.

Examples:
  wheeljam play
  wheeljam play --seed 42
  wheeljam play --config ./my-wheel.yaml
  wheeljam play --log-level debug 2>wheel.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger("wheeljam")

	wheelCfg, err := config.LoadWheel(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open history storage
	var recorder tui.Recorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without storage - the puzzle still works
	} else {
		recorder = store
	}

	game := wheelgame.New(wheelCfg, logger)
	runErr := tui.Run(game, recorder, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}
}
