package t2048

import (
	"github.com/vovakirdan/parlor/internal/achievement"
	"github.com/vovakirdan/parlor/internal/core"
)

var catalog = []achievement.Definition{
	{ID: "tile_128", Name: "First 128", Description: "Create a 128 tile", Condition: achievement.TileAtLeast(128)},
	{ID: "tile_512", Name: "Path to 2048", Description: "Create a 512 tile", Condition: achievement.TileAtLeast(512)},
	{ID: "tile_2048", Name: "The Master", Description: "Create a 2048 tile", Condition: achievement.TileAtLeast(2048)},
	{ID: "score_1000", Name: "Scoring King", Description: "Reach 1000 points", Condition: achievement.ScoreAtLeast(1000)},
	{ID: "score_5000", Name: "High Roller", Description: "Reach 5000 points", Condition: achievement.ScoreAtLeast(5000)},
	{ID: "first_win", Name: "Victory!", Description: "Win your first game", Condition: achievement.FirstOccurrence(core.EventWin)},
	{ID: "sound_enthusiast", Name: "Sound Enthusiast", Description: "Toggle sound 10 times", Condition: achievement.EventCount(core.EventSoundToggled, 10)},
}

// Achievements returns the 2048 achievement catalog, shared by both modes.
func Achievements() []achievement.Definition {
	out := make([]achievement.Definition, len(catalog))
	copy(out, catalog)
	return out
}
