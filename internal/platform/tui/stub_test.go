package tui

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/vovakirdan/parlor/internal/achievement"
	"github.com/vovakirdan/parlor/internal/core"
	"github.com/vovakirdan/parlor/internal/registry"
	"github.com/vovakirdan/parlor/internal/storage"
)

// stubGame scores 10 per Confirm, ends on Down, undoes on Undo and starts
// a new round on Up.
type stubGame struct {
	id    string
	score int
	over  bool
}

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{id: "stub"} })
	registry.Register("stub_hard", func() registry.Game { return &stubGame{id: "stub_hard"} })
}

func (g *stubGame) ID() string    { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.score, g.over = 0, false
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	var events []core.Event
	switch {
	case in.Has(core.ActionConfirm) && !g.over:
		g.score += 10
		events = append(events, core.Event{Kind: core.EventScore, Value: g.score})
	case in.Has(core.ActionDown) && !g.over:
		g.over = true
		events = append(events, core.Event{Kind: core.EventLoss})
	case in.Has(core.ActionUndo), in.Has(core.ActionUp):
		g.over = false
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub "+strconv.Itoa(g.score))
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}

func (g *stubGame) Save(store core.Storage) error {
	return core.SetInt(store, g.id+"_score", g.score)
}

func (g *stubGame) Restore(store core.Storage) bool {
	v := core.GetInt(store, g.id+"_score", -1)
	if v < 0 {
		return false
	}
	g.score = v
	return true
}

func (g *stubGame) Achievements() []achievement.Definition {
	return []achievement.Definition{
		{ID: "stub_ten", Name: "Ten", Description: "Score 10", Condition: achievement.ScoreAtLeast(10)},
		{ID: "stub_sound", Name: "Noisy", Description: "Toggle sound twice", Condition: achievement.EventCount(core.EventSoundToggled, 2)},
	}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "parlor.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func confirmFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	return in
}
