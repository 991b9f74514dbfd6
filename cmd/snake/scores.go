package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/slavikme/snake-game/internal/platform/tui"
	"github.com/slavikme/snake-game/internal/registry"
	"github.com/slavikme/snake-game/internal/storage"
)

var (
	flagScoresEndless     bool
	flagScoresInteractive bool
	flagScoresStats       bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores. Campaign and endless mode keep
separate leaderboards.

Examples:
  snake scores
  snake scores --endless
  snake scores --stats
  snake scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresEndless, "endless", false, "Show the endless mode leaderboard")
	scoresCmd.Flags().BoolVar(&flagScoresInteractive, "interactive", false, "Browse leaderboards in a full-screen view")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregated statistics instead of the leaderboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the selected mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "snake"
	if flagScoresEndless {
		gameID = "snake_endless"
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", gameID)
		return
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagScoresStats {
		printStats(store, gameID)
		return
	}

	printTopScores(store, gameID)
}

func printTopScores(store *storage.Store, gameID string) {
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-14s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-10d  %s\n", i+1, player, entry.Score, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printStats(store *storage.Store, gameID string) {
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Statistics - %s\n", gameID)
	fmt.Println()
	fmt.Printf("  Games played: %d\n", stats.GamesCount)
	fmt.Printf("  High score:   %d\n", stats.HighScore)
	fmt.Printf("  Average:      %.1f\n", stats.AvgScore)
	fmt.Printf("  Total score:  %d\n", stats.TotalScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
