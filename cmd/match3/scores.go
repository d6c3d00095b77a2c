package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagShowRuns bool
	flagClear    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for the specified mode.
Without a mode, prints a summary for every mode that has been played.

Examples:
  match3 scores
  match3 scores match3
  match3 scores match3_endless --runs
  match3 scores match3 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagShowRuns, "runs", false, "Also list recent runs with their seeds")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'match3 list' to see available modes)", gameID)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", gameTitle(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Avg: %.0f  Best combo: x%d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestCombo)
	}

	if !flagShowRuns {
		return nil
	}

	runs, err := store.RecentRuns(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-8s  %-5s  %-8s  %-5s  %-4s  %s\n", "Score", "Moves", "Cascades", "Combo", "Run", "Seed")
	for _, r := range runs {
		fmt.Printf("  %-8d  %-5d  %-8d  %-5d  %-4d  %d\n",
			r.Score, r.MovesUsed, r.Cascades, r.BestCombo, r.LongestRun, r.Seed)
	}
	return nil
}

// printSummary lists aggregate stats for every played mode.
func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-20s  %-6s  %-8s  %s\n", "Mode", "Games", "Best", "Last played")
	fmt.Printf("  %-20s  %-6s  %-8s  %s\n", "----", "-----", "----", "-----------")
	for _, info := range registry.List() {
		stats, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-20s  %-6d  %-8d  %s\n",
			info.Title, stats.GamesCount, stats.HighScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func gameTitle(gameID string) string {
	for _, info := range registry.List() {
		if info.ID == gameID {
			return info.Title
		}
	}
	return gameID
}
