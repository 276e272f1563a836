package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/parlor/internal/core"
	"github.com/vovakirdan/parlor/internal/profile"
	"github.com/vovakirdan/parlor/internal/registry"
	"github.com/vovakirdan/parlor/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store, id string, resume bool) Model {
	t.Helper()
	game, err := registry.Create(id)
	if err != nil {
		t.Fatalf("Create(%q) error: %v", id, err)
	}
	return NewModel(game, store, testConfig(), resume)
}

// tick runs one simulation step with the given actions pressed.
func tick(m Model, actions ...core.Action) Model {
	for _, a := range actions {
		m.inputFrame.Set(a)
	}
	next, _ := m.handleTick()
	return next.(Model)
}

func countScores(t *testing.T, store *storage.Store, id string) int {
	t.Helper()
	scores, err := store.TopScores(id, 100)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	return len(scores)
}

func TestModelRecordsScoreOncePerRound(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store, "stub", false)

	m = tick(m, core.ActionConfirm)
	if m.best != 10 {
		t.Errorf("best = %d after scoring, want 10", m.best)
	}

	m = tick(m, core.ActionDown)
	m = tick(m)
	if n := countScores(t, store, "stub"); n != 1 {
		t.Fatalf("%d scores after game over, want 1", n)
	}

	// Undo out of the loss and lose again: same round, no new entry.
	m = tick(m, core.ActionUndo)
	m = tick(m, core.ActionDown)
	if n := countScores(t, store, "stub"); n != 1 {
		t.Errorf("%d scores after undo and loss, want 1", n)
	}

	// A new round may be recorded again.
	m = tick(m, core.ActionUp)
	tick(m, core.ActionDown)
	if n := countScores(t, store, "stub"); n != 2 {
		t.Errorf("%d scores after second round, want 2", n)
	}

	scores, _ := store.TopScores("stub", 1)
	if scores[0].Player != profile.DefaultPlayerName {
		t.Errorf("player = %q, want %q", scores[0].Player, profile.DefaultPlayerName)
	}
}

func TestModelBestScoreSharedByModes(t *testing.T) {
	store := openTestStore(t)

	m := newTestModel(t, store, "stub_hard", false)
	tick(m, core.ActionConfirm)

	if best := profile.New(store, "stub").BestScore(); best != 10 {
		t.Errorf("family best = %d, want 10", best)
	}
	if other := newTestModel(t, store, "stub", false); other.best != 10 {
		t.Errorf("base game best = %d, want 10", other.best)
	}
}

func TestModelResume(t *testing.T) {
	store := openTestStore(t)
	if err := store.Set("stub_score", "30"); err != nil {
		t.Fatal(err)
	}

	if m := newTestModel(t, store, "stub", true); m.game.State().Score != 30 {
		t.Errorf("resumed score = %d, want 30", m.game.State().Score)
	}
	if m := newTestModel(t, store, "stub", false); m.game.State().Score != 0 {
		t.Errorf("fresh score = %d, want 0", m.game.State().Score)
	}
}

func TestModelSavesAfterInput(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store, "stub", false)

	tick(m, core.ActionConfirm)
	if v, ok := store.Get("stub_score"); !ok || v != "10" {
		t.Errorf("stored score = %q, %v; want 10", v, ok)
	}
}

func TestModelSoundToggleAchievement(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store, "stub", false)

	m.toggleSound()
	if m.profile.SoundEnabled() {
		t.Fatal("first toggle should mute")
	}
	m.toggleSound()

	if !m.tracker.Unlocked("stub_sound") {
		t.Error("two toggles should unlock stub_sound")
	}
	if !strings.Contains(m.toast, "Noisy") {
		t.Errorf("toast = %q, want the unlock notice", m.toast)
	}

	game, _ := registry.Create("stub")
	stored, err := profile.New(store, "stub").Achievements(game.(registry.Achiever).Achievements())
	if err != nil || !stored.Unlocked("stub_sound") {
		t.Errorf("unlock not stored (err %v)", err)
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := newTestModel(t, nil, "stub", false)
	m = tick(m, core.ActionConfirm)
	m = tick(m, core.ActionDown)
	if !m.scoreSaved {
		t.Error("game over should be latched even without a database")
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t, nil, "stub", false)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(Model).quitting || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil, "stub", false)
	out := m.View()
	if !strings.Contains(out, "stub 0") || !strings.Contains(out, "Best: 0") {
		t.Errorf("View() missing game or status bar:\n%s", out)
	}
}
