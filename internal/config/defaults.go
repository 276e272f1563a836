package config

import (
	_ "embed"
)

//go:embed defaults/2048.yaml
var default2048YAML []byte

//go:embed defaults/hangman.yaml
var defaultHangmanYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Target:       2048,
		HistoryLimit: 20,
		Spawn: T2048Spawn{
			FourProbability: 0.10,
			StartTiles:      2,
			StartValue:      2,
		},
	}
}

// DefaultHangmanConfig returns the default Hangman configuration.
func DefaultHangmanConfig() HangmanConfig {
	return HangmanConfig{
		MaxWrongGuesses: 10,
		DefaultCategory: "Fruits",
		Categories: []Category{
			{Name: "Fruits", Words: []string{"APPLE", "BANANA", "PEAR", "ORANGE", "MANGO", "LEMON"}},
			{Name: "Animals", Words: []string{"DOG", "CAT", "LION", "TIGER", "ELEPHANT", "PANDA"}},
			{Name: "Countries", Words: []string{"RUSSIA", "USA", "CHINA", "INDIA", "BRAZIL", "CANADA"}},
		},
	}
}

// DefaultTicTacToeConfig returns the default Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		HumanSymbol: "X",
		AI: TicTacToeAI{
			DelayMS:  500,
			Strategy: StrategyRandom,
		},
	}
}
