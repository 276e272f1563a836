package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigDir is the per-user directory searched for game configs.
const ConfigDir = ".parlor/configs"

// load decodes a config of type T.
// Search order: customPath -> ~/.parlor/configs/<file> -> ./configs/<file> -> embedded default.
// Fields missing from the chosen file keep their defaults.
func load[T any](file, customPath string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(file); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = defaults()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", file)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = defaults()
	}

	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDir, filename)
}

// LoadT2048 loads the 2048 configuration.
func LoadT2048(customPath string) (T2048Config, error) {
	cfg, err := load("2048.yaml", customPath, default2048YAML, DefaultT2048Config)
	cfg.normalize()
	return cfg, err
}

// LoadHangman loads the Hangman configuration.
func LoadHangman(customPath string) (HangmanConfig, error) {
	cfg, err := load("hangman.yaml", customPath, defaultHangmanYAML, DefaultHangmanConfig)
	cfg.normalize()
	return cfg, err
}

// LoadTicTacToe loads the Tic-Tac-Toe configuration.
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	cfg, err := load("tictactoe.yaml", customPath, defaultTicTacToeYAML, DefaultTicTacToeConfig)
	cfg.normalize()
	return cfg, err
}
