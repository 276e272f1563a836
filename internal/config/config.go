// Package config provides YAML-based game configuration loading and
// difficulty presets for the parlor games.
package config

// T2048Config contains all configuration for 2048.
type T2048Config struct {
	Target       int        `yaml:"target"`        // Tile value that wins; 0 disables winning
	HistoryLimit int        `yaml:"history_limit"` // Snapshots kept for undo
	Spawn        T2048Spawn `yaml:"spawn"`
}

// T2048Spawn defines how new tiles appear.
type T2048Spawn struct {
	FourProbability float64 `yaml:"four_probability"`
	StartTiles      int     `yaml:"start_tiles"`
	StartValue      int     `yaml:"start_value"`
}

// HangmanConfig contains all configuration for Hangman.
type HangmanConfig struct {
	MaxWrongGuesses int        `yaml:"max_wrong_guesses"`
	DefaultCategory string     `yaml:"default_category"`
	Categories      []Category `yaml:"categories"`
}

// Category is a named word list.
type Category struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

// CategoryIndex returns the position of the named category, or 0.
func (c HangmanConfig) CategoryIndex(name string) int {
	for i, cat := range c.Categories {
		if cat.Name == name {
			return i
		}
	}
	return 0
}

// TicTacToeConfig contains all configuration for Tic-Tac-Toe.
type TicTacToeConfig struct {
	HumanSymbol string      `yaml:"human_symbol"` // "X" or "O" in AI mode
	AI          TicTacToeAI `yaml:"ai"`
}

// TicTacToeAI configures the computer opponent.
type TicTacToeAI struct {
	DelayMS  int    `yaml:"delay_ms"`
	Strategy string `yaml:"strategy"` // "random" or "greedy"
}

// AI strategies.
const (
	StrategyRandom = "random"
	StrategyGreedy = "greedy"
)

func (c *T2048Config) normalize() {
	def := DefaultT2048Config()
	if c.Target < 0 {
		c.Target = def.Target
	}
	if c.HistoryLimit < 2 {
		c.HistoryLimit = def.HistoryLimit
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		c.Spawn.FourProbability = def.Spawn.FourProbability
	}
	if c.Spawn.StartTiles < 1 || c.Spawn.StartTiles > 16 {
		c.Spawn.StartTiles = def.Spawn.StartTiles
	}
	if c.Spawn.StartValue < 2 || c.Spawn.StartValue&(c.Spawn.StartValue-1) != 0 {
		c.Spawn.StartValue = def.Spawn.StartValue
	}
}

func (c *HangmanConfig) normalize() {
	def := DefaultHangmanConfig()
	if c.MaxWrongGuesses <= 0 {
		c.MaxWrongGuesses = def.MaxWrongGuesses
	}
	cats := c.Categories[:0]
	for _, cat := range c.Categories {
		if cat.Name != "" && len(cat.Words) > 0 {
			cats = append(cats, cat)
		}
	}
	c.Categories = cats
	if len(c.Categories) == 0 {
		c.Categories = def.Categories
	}
	if c.DefaultCategory == "" {
		c.DefaultCategory = c.Categories[0].Name
	}
}

func (c *TicTacToeConfig) normalize() {
	def := DefaultTicTacToeConfig()
	if c.HumanSymbol != "X" && c.HumanSymbol != "O" {
		c.HumanSymbol = def.HumanSymbol
	}
	if c.AI.DelayMS < 0 {
		c.AI.DelayMS = def.AI.DelayMS
	}
	if c.AI.Strategy != StrategyRandom && c.AI.Strategy != StrategyGreedy {
		c.AI.Strategy = def.AI.Strategy
	}
}
