package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/slavikme/snake-game/internal/core"
	"github.com/slavikme/snake-game/internal/platform/tui"
	"github.com/slavikme/snake-game/internal/registry"
	"github.com/slavikme/snake-game/internal/snake"
	"github.com/slavikme/snake-game/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagEndless    bool
	flagLevel      int
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Snake. Without flags an interactive picker lets you
choose between the campaign, endless mode, and a starting level.

Controls:
  Arrows/WASD - Steer
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Base speed from config
  normal - Slightly faster base speed
  hard   - Fastest base speed
  fixed  - Base speed, no per-level speed-up

Examples:
  snake play
  snake play --endless
  snake play --level 5
  snake play --difficulty hard --player alice
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode (skips the picker)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign starting level, 1-based (skips the picker)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the leaderboard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the mode selector
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

	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(flagDifficulty)

	gameID := "snake"
	switch {
	case flagEndless:
		gameID = "snake_endless"
	case flagLevel > 0:
		if flagLevel > snake.LevelCount() {
			fmt.Fprintf(os.Stderr, "Error: level %d out of range (1-%d)\n", flagLevel, snake.LevelCount())
			os.Exit(1)
		}
		snake.SetStartLevel(flagLevel)
	default:
		// Show the mode/level picker
		selection, selErr := tui.RunModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}

		// User pressed back or quit
		if selection == nil {
			return
		}

		if selection.Mode == tui.ModeEndless {
			gameID = "snake_endless"
		}
		if selection.Level > 0 {
			snake.SetStartLevel(selection.Level)
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, flagPlayer, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
