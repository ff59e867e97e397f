package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/amirjavarsineh/WARMUP/internal/core"
	"github.com/amirjavarsineh/WARMUP/internal/games/coins"
	"github.com/amirjavarsineh/WARMUP/internal/platform/tui"
	"github.com/amirjavarsineh/WARMUP/internal/registry"
	"github.com/amirjavarsineh/WARMUP/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Left/Right, A/D  - Move
  1 or Enter       - Play (from the menu)
  2                - Settings
  1 or T           - Toggle theme (in settings)
  Esc/B            - Back
  3 or Q           - Quit (from the menu)
  Ctrl+S           - Save a screenshot
  Ctrl+C           - Force quit

Examples:
  coins play
  coins play --seed 42
  coins play --config ./my-coins.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Terminal size decides the initial screen; resizes follow later
	width, height := 80, 24
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

	// Wire the game's config and persistence seams before creation
	coins.SetConfigPath(flagConfig)

	store, err := storage.Open(flagScoreFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open high-score file: %v\n", err)
		// Continue without persistence - the game still works
	} else {
		coins.SetStore(store)
	}

	game, err := registry.Create("coins")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if runErr := tui.Run(game, cfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
