// Package profile keeps per-game player settings on top of a key-value
// store: sound, volume, display name, best score and achievement progress.
// Every read falls back to a default when the stored value is missing or
// malformed.
package profile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/parlor/internal/achievement"
	"github.com/vovakirdan/parlor/internal/core"
)

// DefaultPlayerName is shown until the player picks a name.
const DefaultPlayerName = "Player"

// MaxNameLength bounds stored player names, in runes.
const MaxNameLength = 20

// VolumeStep is the change applied by one volume up/down request.
const VolumeStep = 0.1

// Key suffixes under the game namespace.
const (
	keySound        = "soundEnabled"
	keyVolume       = "gameVolume"
	keyPlayerName   = "playerName"
	keyBestScore    = "bestScore"
	keyAchievements = "achievements"
)

// Profile is one game's settings view of the store.
type Profile struct {
	store     core.Storage
	namespace string
}

// New returns the profile stored under the given game namespace.
func New(store core.Storage, namespace string) *Profile {
	return &Profile{store: store, namespace: namespace}
}

// NamespaceFor maps a game ID to its profile namespace. Variants of one
// game ("2048_endless", "tictactoe_ai") share the base game's profile.
func NamespaceFor(gameID string) string {
	base, _, _ := strings.Cut(gameID, "_")
	return base
}

// Namespace returns the key prefix of this profile.
func (p *Profile) Namespace() string {
	return p.namespace
}

// Key returns the full storage key for a setting name.
func (p *Profile) Key(name string) string {
	return p.namespace + "_" + name
}

// SoundEnabled reports the sound flag. Sound is on by default.
func (p *Profile) SoundEnabled() bool {
	return core.GetBool(p.store, p.Key(keySound), true)
}

// SetSoundEnabled stores the sound flag.
func (p *Profile) SetSoundEnabled(on bool) error {
	if err := core.SetBool(p.store, p.Key(keySound), on); err != nil {
		return fmt.Errorf("profile: cannot save sound flag: %w", err)
	}
	return nil
}

// ToggleSound flips the sound flag and returns the new value.
func (p *Profile) ToggleSound() (bool, error) {
	on := !p.SoundEnabled()
	return on, p.SetSoundEnabled(on)
}

// Volume returns the stored volume in [0, 1]. Full volume by default.
func (p *Profile) Volume() float64 {
	return core.ClampF(core.GetFloat(p.store, p.Key(keyVolume), 1.0), 0, 1)
}

// SetVolume clamps v to [0, 1], stores it and returns the stored value.
func (p *Profile) SetVolume(v float64) (float64, error) {
	v = core.ClampF(v, 0, 1)
	// Round to the step grid so repeated +/- does not drift.
	v = float64(int(v*100+0.5)) / 100
	if err := p.store.Set(p.Key(keyVolume), strconv.FormatFloat(v, 'f', -1, 64)); err != nil {
		return v, fmt.Errorf("profile: cannot save volume: %w", err)
	}
	return v, nil
}

// AdjustVolume moves the volume by delta and returns the stored value.
func (p *Profile) AdjustVolume(delta float64) (float64, error) {
	return p.SetVolume(p.Volume() + delta)
}

// PlayerName returns the display name.
func (p *Profile) PlayerName() string {
	v, ok := p.store.Get(p.Key(keyPlayerName))
	if !ok {
		return DefaultPlayerName
	}
	return normalizeName(v)
}

// SetPlayerName stores a trimmed name; a blank name resets to the default.
func (p *Profile) SetPlayerName(name string) (string, error) {
	name = normalizeName(name)
	if err := p.store.Set(p.Key(keyPlayerName), name); err != nil {
		return name, fmt.Errorf("profile: cannot save player name: %w", err)
	}
	return name, nil
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultPlayerName
	}
	if r := []rune(name); len(r) > MaxNameLength {
		name = string(r[:MaxNameLength])
	}
	return name
}

// BestScore returns the best score recorded for this game.
func (p *Profile) BestScore() int {
	return max(core.GetInt(p.store, p.Key(keyBestScore), 0), 0)
}

// RecordScore keeps max(score, best) and returns the resulting best.
func (p *Profile) RecordScore(score int) (int, error) {
	best := p.BestScore()
	if score <= best {
		return best, nil
	}
	if err := core.SetInt(p.store, p.Key(keyBestScore), score); err != nil {
		return best, fmt.Errorf("profile: cannot save best score: %w", err)
	}
	return score, nil
}

// Achievements loads the tracker for the given catalog. Malformed progress
// yields a fresh tracker together with the decoding error.
func (p *Profile) Achievements(defs []achievement.Definition) (*achievement.Tracker, error) {
	t := achievement.NewTracker(defs)
	data, ok := p.store.Get(p.Key(keyAchievements))
	if !ok {
		return t, nil
	}
	if err := t.Load(data); err != nil {
		return t, fmt.Errorf("profile: %s achievements: %w", p.namespace, err)
	}
	return t, nil
}

// SaveAchievements stores the tracker progress.
func (p *Profile) SaveAchievements(t *achievement.Tracker) error {
	data, err := t.Marshal()
	if err != nil {
		return err
	}
	if err := p.store.Set(p.Key(keyAchievements), data); err != nil {
		return fmt.Errorf("profile: cannot save achievements: %w", err)
	}
	return nil
}
