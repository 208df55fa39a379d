package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresLimit  int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores with the statistics of each run.

Examples:
  invaders scores
  invaders scores --limit 25
  invaders scores --player ace
  invaders scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show runs by this player")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(flagScoresPlayer, flagScoresLimit)
	} else {
		scores, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		return err
	}

	// Display scores
	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'invaders play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %-7s  %-5s  %-8s  %s\n",
		"Rank", "Player", "Score", "Level", "Lives", "Bullets", "Kills", "Accuracy", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %-7s  %-5s  %-8s  %s\n",
		"----", "------", "-----", "-----", "-----", "-------", "-----", "--------", "----")

	// Print scores
	for i, e := range scores {
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-5d  %-7d  %-5d  %-8s  %s\n",
			i+1, e.Name, e.Score, e.Level, e.Lives, e.BulletsShot, e.ShipsDestroyed,
			fmt.Sprintf("%.1f%%", e.Accuracy()*100), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show totals
	stats, err := store.GetStats()
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d over %d runs (average %.0f, furthest level %d)\n",
			stats.HighScore, stats.RunsCount, stats.AvgScore, stats.BestLevel)
		fmt.Printf("Lifetime: %d bullets fired, %d ships destroyed\n", stats.BulletsShot, stats.ShipsDestroyed)
	}
	return nil
}
