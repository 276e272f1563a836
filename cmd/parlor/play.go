package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parlor/internal/core"
	"github.com/vovakirdan/parlor/internal/games/hangman"
	"github.com/vovakirdan/parlor/internal/games/t2048"
	"github.com/vovakirdan/parlor/internal/games/tictactoe"
	"github.com/vovakirdan/parlor/internal/platform/tui"
	"github.com/vovakirdan/parlor/internal/registry"
)

var (
	flagNew bool
	flagAs  string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. A saved game of the same mode is
resumed unless --new is given. "2048" and "tictactoe" open a mode menu
first; use "2048_endless" or "tictactoe_ai" to skip it.

Controls:
  Arrows/WASD  - Move (2048 also accepts mouse swipes)
  Enter/Space  - Confirm / place a mark
  U            - Undo (2048)
  P            - Pause
  R            - New game (Ctrl+R in Hangman)
  M / Ctrl+T   - Toggle sound
  +/-          - Volume
  Q/Esc        - Quit

Difficulty options:
  easy   - 2048: fewer 4s. Hangman: 12 wrong guesses. Computer plays randomly
  normal - Standard settings
  hard   - 2048: more 4s, 5 undos. Hangman: 6 wrong guesses. Computer
           takes wins and blocks yours

Examples:
  parlor play 2048
  parlor play 2048_endless --new
  parlor play hangman --difficulty hard
  parlor play tictactoe_ai --as O
  parlor play 2048 --config ./my-2048.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Start a new game instead of resuming")
	playCmd.Flags().StringVar(&flagAs, "as", "", "Tic-Tac-Toe symbol against the computer: X or O")
}

// launch is a game ready to run.
type launch struct {
	gameID string
	resume bool
}

// prepareGame applies config flags and runs the game's mode menu when it
// has one. Returns nil when the user backed out.
func prepareGame(gameID string, cfg core.RuntimeConfig, resume bool) (*launch, core.RuntimeConfig, error) {
	l := &launch{gameID: gameID, resume: resume}

	switch gameID {
	case "2048", "2048_endless":
		t2048.SetConfigPath(flagConfig)
		t2048.SetDifficultyPreset(flagDifficulty)
		if gameID != "2048" {
			break
		}

		selection, updatedCfg, err := tui.RunT2048ModeSelector(cfg)
		if err != nil {
			return nil, cfg, err
		}
		cfg = updatedCfg
		if selection == nil {
			return nil, cfg, nil
		}
		l.gameID = selection.GameID()
		l.resume = selection.Resume

	case "hangman":
		hangman.SetConfigPath(flagConfig)
		hangman.SetDifficultyPreset(flagDifficulty)

	case "tictactoe", "tictactoe_ai":
		tictactoe.SetConfigPath(flagConfig)
		tictactoe.SetDifficultyPreset(flagDifficulty)
		tictactoe.SetHumanSymbol(tictactoe.ParseCell(flagAs))
		if gameID != "tictactoe" {
			break
		}

		selection, updatedCfg, err := tui.RunTicTacToeModeSelector(cfg)
		if err != nil {
			return nil, cfg, err
		}
		cfg = updatedCfg
		if selection == nil {
			return nil, cfg, nil
		}
		// A chosen opponent always starts a fresh round
		l.gameID = selection.GameID()
		l.resume = false
		tictactoe.SetHumanSymbol(selection.Human)
	}

	return l, cfg, nil
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	if flagAs != "" && tictactoe.ParseCell(flagAs) == tictactoe.Empty {
		fmt.Fprintf(os.Stderr, "Error: --as must be X or O, got %q\n", flagAs)
		os.Exit(1)
	}

	l, cfg, err := prepareGame(gameID, runtimeConfig(), !flagNew)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// User pressed back or quit
	if l == nil {
		return
	}

	game, err := registry.Create(l.gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage - game still works
	store := openStore()

	runErr := tui.Run(game, store, cfg, l.resume)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
