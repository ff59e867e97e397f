// coins is a terminal arcade game: steer a catcher along the bottom of
// the screen, collect falling coins, dodge obstacles, and chase the
// high score.
//
// Usage:
//
//	coins                - Play in the current terminal
//	coins play           - Same as the bare command
//	coins score          - Show the saved high score
//	coins serve          - Serve the game over SSH
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible sessions
//	--score-file <path>  - High-score file (default: ~/.warmup/highscore)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/amirjavarsineh/WARMUP/internal/games/coins"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagScoreFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coins",
	Short: "Coin Collector - catch coins, dodge obstacles",
	Long: `Coin Collector is a terminal arcade game. Coins fall from the top of
the screen and are worth points, obstacles cost a life, and power-ups
grant a shield, a speed boost, or an extra life. Reach score thresholds
to level up; the game gets faster the longer you survive.

Available commands:
  play     - Play in the current terminal (also the default)
  score    - Show or reset the saved high score
  serve    - Start an SSH server for remote play

Examples:
  coins
  coins play --seed 42
  coins score
  coins serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScoreFile, "score-file", "~/.warmup/highscore", "Path to the high-score file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(serveCmd)
}
