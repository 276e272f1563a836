// parlor is a terminal game parlor: 2048, Hangman and Tic-Tac-Toe with
// saved games, per-game settings, achievements and local leaderboards.
//
// Usage:
//
//	parlor list                  - List available games
//	parlor play <game>           - Play a game
//	parlor menu                  - Start menu to pick games interactively
//	parlor scores <game>         - Show high scores for a game
//	parlor achievements <game>   - Show achievement progress
//	parlor profile <game>        - Show or change player settings
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.parlor/parlor.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--log-level <level>  - Log level for ~/.parlor/parlor.log
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/parlor/internal/config"
	"github.com/vovakirdan/parlor/internal/core"
	_ "github.com/vovakirdan/parlor/internal/games/hangman" // Register games
	_ "github.com/vovakirdan/parlor/internal/games/t2048"
	_ "github.com/vovakirdan/parlor/internal/games/tictactoe"
	"github.com/vovakirdan/parlor/internal/platform/tui"
	"github.com/vovakirdan/parlor/internal/registry"
	"github.com/vovakirdan/parlor/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "parlor",
	Short: "Parlor - Play word and puzzle games in your terminal",
	Long: `Parlor is a terminal game collection with saved games, per-game
settings, achievements and local leaderboards.

Available commands:
  list           - Show all available games
  play           - Play a specific game directly
  menu           - Interactive game picker menu
  scores         - View high scores
  achievements   - View achievement progress
  profile        - Show or change player settings

Examples:
  parlor list
  parlor play 2048
  parlor play hangman --difficulty easy
  parlor menu
  parlor scores 2048_endless`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.parlor/parlor.db", "Path to the parlor database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.parlor/parlor.log", "Path to the log file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(profileCmd)
}

// setup validates global flags and opens the log file. The TUI owns the
// terminal, so logs go to a file.
func setup(_ *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	path, err := storage.ExpandHome(flagLogFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "parlor",
		Level:           level,
	})
	tui.SetLogger(logger)
	return nil
}

// requireGame exits when the game ID is not registered.
func requireGame(gameID string) {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'parlor list' to see available games.")
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the database, or returns nil with a warning so games
// still run without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}

// mustOpenStore opens the database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}
