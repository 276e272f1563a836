package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyDefault DifficultyPreset = ""
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name keeps the config as loaded.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyDefault, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyDefault, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyT2048Preset adjusts how often 4s spawn.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.FourProbability = 0.05
	case DifficultyNormal:
		cfg.Spawn.FourProbability = 0.10
	case DifficultyHard:
		cfg.Spawn.FourProbability = 0.20
		cfg.HistoryLimit = 5
	}
}

// ApplyHangmanPreset adjusts the number of wrong guesses allowed.
func ApplyHangmanPreset(cfg *HangmanConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.MaxWrongGuesses = 12
	case DifficultyNormal:
		cfg.MaxWrongGuesses = 10
	case DifficultyHard:
		cfg.MaxWrongGuesses = 6
	}
}

// ApplyTicTacToePreset picks the AI strategy and reaction time.
func ApplyTicTacToePreset(cfg *TicTacToeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.AI.Strategy = StrategyRandom
		cfg.AI.DelayMS = 700
	case DifficultyNormal:
		cfg.AI.Strategy = StrategyRandom
		cfg.AI.DelayMS = 500
	case DifficultyHard:
		cfg.AI.Strategy = StrategyGreedy
		cfg.AI.DelayMS = 300
	}
}
