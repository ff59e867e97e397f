package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amirjavarsineh/WARMUP/internal/storage"
)

var flagResetScore bool

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the saved high score",
	Long: `Print the persisted high score.

Examples:
  coins score
  coins score --reset
  coins score --score-file ./highscore`,
	Run: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&flagResetScore, "reset", false, "Reset the saved high score to 0")
}

func runScore(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagScoreFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening high-score file: %v\n", err)
		os.Exit(1)
	}

	if flagResetScore {
		if saveErr := store.Save(0); saveErr != nil {
			fmt.Fprintf(os.Stderr, "Error resetting high score: %v\n", saveErr)
			os.Exit(1)
		}
		fmt.Println("High score reset.")
		return
	}

	fmt.Printf("High score: %d\n", store.Load())
}
