package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parlor/internal/core"
	"github.com/vovakirdan/parlor/internal/platform/tui"
	"github.com/vovakirdan/parlor/internal/registry"
	"github.com/vovakirdan/parlor/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the parlor with a game picker menu",
	Long: `Start the parlor in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the highlighted game
  Tab          - High scores
  A            - Achievements
  P            - Profile and sound settings
  Q            - Quit

Examples:
  parlor menu
  parlor menu --fps 30
  parlor menu --db ./parlor.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	var kv core.Storage = storage.NewMemory()
	if store != nil {
		kv = store
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit || menuResult.GameID == "" {
			break
		}

		var goBack bool
		switch menuResult.Screen {
		case tui.MenuScreenScoreboard:
			goBack, err = tui.RunScoreboard(store, menuResult.GameID, cfg.ScreenW, cfg.ScreenH)
		case tui.MenuScreenAchievements:
			goBack, err = tui.RunAchievements(kv, menuResult.GameID, cfg.ScreenW, cfg.ScreenH)
		case tui.MenuScreenProfile:
			goBack, err = tui.RunProfile(kv, menuResult.GameID, cfg.ScreenW, cfg.ScreenH)
		default:
			cfg, err = playFromMenu(menuResult.GameID, store, cfg)
			goBack = true
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		if !goBack {
			break // User quit from a sub-screen
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}

// playFromMenu runs the mode menu and the game, then returns to the menu.
func playFromMenu(gameID string, store *storage.Store, cfg core.RuntimeConfig) (core.RuntimeConfig, error) {
	l, cfg, err := prepareGame(gameID, cfg, true)
	if err != nil || l == nil {
		return cfg, err
	}

	game, err := registry.Create(l.gameID)
	if err != nil {
		return cfg, fmt.Errorf("creating game: %w", err)
	}

	// Fresh seed for each game
	cfg.Seed = time.Now().UnixNano()

	return cfg, tui.Run(game, store, cfg, l.resume)
}
