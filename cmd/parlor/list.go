package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parlor/internal/registry"
	"github.com/vovakirdan/parlor/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every registered game and mode together with its best recorded
score.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Scores are optional here
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Best")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----")

	for _, g := range games {
		best := "-"
		if store != nil {
			if hs, err := store.HighScore(g.ID); err == nil && hs > 0 {
				best = fmt.Sprintf("%d", hs)
			}
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, best)
	}

	fmt.Println()
	fmt.Println("Run 'parlor play <id>' to play a game.")
}
