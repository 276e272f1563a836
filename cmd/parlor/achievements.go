package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parlor/internal/platform/tui"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements <game>",
	Short: "Show achievement progress for a game",
	Long: `List the achievements of a game and which ones are unlocked.
Modes of one game share their progress.

Examples:
  parlor achievements 2048
  parlor achievements hangman`,
	Args: cobra.ExactArgs(1),
	Run:  runAchievements,
}

func runAchievements(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	store := mustOpenStore()
	defer store.Close()

	entries, err := tui.LoadAchievements(store, gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading achievements: %v\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("This game has no achievements.")
		return
	}

	unlocked := 0
	for _, e := range entries {
		mark := "[ ]"
		if e.Unlocked {
			mark = "[x]"
			unlocked++
		}
		line := fmt.Sprintf("  %s %-20s %s", mark, e.Name, e.Description)
		if p := e.Progress(); p != "" {
			line += " (" + p + ")"
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Printf("Unlocked %d of %d.\n", unlocked, len(entries))
}
