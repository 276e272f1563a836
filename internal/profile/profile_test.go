package profile

import (
	"strings"
	"testing"

	"github.com/vovakirdan/parlor/internal/achievement"
	"github.com/vovakirdan/parlor/internal/core"
	"github.com/vovakirdan/parlor/internal/storage"
)

func TestProfileDefaults(t *testing.T) {
	p := New(storage.NewMemory(), "2048")

	if !p.SoundEnabled() {
		t.Error("sound should be on by default")
	}
	if p.Volume() != 1.0 {
		t.Errorf("Volume() = %v, want 1", p.Volume())
	}
	if p.PlayerName() != DefaultPlayerName {
		t.Errorf("PlayerName() = %q, want %q", p.PlayerName(), DefaultPlayerName)
	}
	if p.BestScore() != 0 {
		t.Errorf("BestScore() = %d, want 0", p.BestScore())
	}
}

func TestProfileMalformedValues(t *testing.T) {
	store := storage.NewMemory()
	store.Set("hangman_soundEnabled", "maybe")
	store.Set("hangman_gameVolume", "11")
	store.Set("hangman_bestScore", "-40")
	store.Set("hangman_playerName", "   ")

	p := New(store, "hangman")
	if !p.SoundEnabled() {
		t.Error("malformed sound flag should default to on")
	}
	if p.Volume() != 1 {
		t.Errorf("out of range volume should clamp to 1, got %v", p.Volume())
	}
	if p.BestScore() != 0 {
		t.Errorf("negative best score should read as 0, got %d", p.BestScore())
	}
	if p.PlayerName() != DefaultPlayerName {
		t.Errorf("blank name should read as default, got %q", p.PlayerName())
	}
}

func TestProfileKeys(t *testing.T) {
	store := storage.NewMemory()
	p := New(store, "tictactoe")

	p.SetSoundEnabled(false)
	p.SetVolume(0.4)
	p.SetPlayerName("  Ada ")

	want := map[string]string{
		"tictactoe_soundEnabled": "false",
		"tictactoe_gameVolume":   "0.4",
		"tictactoe_playerName":   "Ada",
	}
	for k, v := range want {
		if got, _ := store.Get(k); got != v {
			t.Errorf("store[%s] = %q, want %q", k, got, v)
		}
	}
}

func TestProfileToggleAndVolume(t *testing.T) {
	p := New(storage.NewMemory(), "2048")

	on, err := p.ToggleSound()
	if err != nil || on {
		t.Fatalf("ToggleSound() = %v, %v, want false", on, err)
	}
	if on, _ := p.ToggleSound(); !on {
		t.Error("second toggle should turn sound back on")
	}

	v, _ := p.AdjustVolume(-VolumeStep)
	v, _ = p.AdjustVolume(-VolumeStep)
	if v != 0.8 {
		t.Errorf("volume after two steps down = %v, want 0.8", v)
	}
	if v, _ := p.SetVolume(-3); v != 0 {
		t.Errorf("SetVolume(-3) = %v, want 0", v)
	}
}

func TestProfileNameLimit(t *testing.T) {
	p := New(storage.NewMemory(), "hangman")

	name, _ := p.SetPlayerName(strings.Repeat("ж", 30))
	if len([]rune(name)) != MaxNameLength {
		t.Errorf("stored name has %d runes, want %d", len([]rune(name)), MaxNameLength)
	}
}

func TestProfileRecordScore(t *testing.T) {
	p := New(storage.NewMemory(), "2048")

	steps := []struct {
		score, best int
	}{
		{120, 120},
		{80, 120},
		{400, 400},
	}
	for _, s := range steps {
		best, err := p.RecordScore(s.score)
		if err != nil {
			t.Fatalf("RecordScore(%d) failed: %v", s.score, err)
		}
		if best != s.best {
			t.Errorf("RecordScore(%d) = %d, want %d", s.score, best, s.best)
		}
	}
}

func TestProfileAchievements(t *testing.T) {
	defs := []achievement.Definition{
		{ID: "first_win", Name: "Victory!", Condition: achievement.FirstOccurrence(core.EventWin)},
	}
	store := storage.NewMemory()
	p := New(store, "2048")

	tr, err := p.Achievements(defs)
	if err != nil {
		t.Fatalf("Achievements() failed: %v", err)
	}
	tr.Observe(core.Event{Kind: core.EventWin})
	if err := p.SaveAchievements(tr); err != nil {
		t.Fatalf("SaveAchievements() failed: %v", err)
	}

	again, err := p.Achievements(defs)
	if err != nil || !again.Unlocked("first_win") {
		t.Errorf("reloaded tracker: unlocked=%v err=%v", again.Unlocked("first_win"), err)
	}

	store.Set("2048_achievements", "not json")
	fresh, err := p.Achievements(defs)
	if err == nil {
		t.Error("malformed achievements should report an error")
	}
	if fresh == nil || fresh.Unlocked("first_win") {
		t.Error("malformed achievements should yield a fresh tracker")
	}
}

func TestNamespaceFor(t *testing.T) {
	tests := map[string]string{
		"2048":         "2048",
		"2048_endless": "2048",
		"hangman":      "hangman",
		"tictactoe_ai": "tictactoe",
	}
	for id, want := range tests {
		if got := NamespaceFor(id); got != want {
			t.Errorf("NamespaceFor(%q) = %q, want %q", id, got, want)
		}
	}
}
