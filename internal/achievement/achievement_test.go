package achievement

import (
	"strings"
	"testing"

	"github.com/vovakirdan/parlor/internal/core"
)

var testCatalog = []Definition{
	{ID: "tile_128", Name: "First 128", Condition: TileAtLeast(128)},
	{ID: "score_1000", Name: "Scoring King", Condition: ScoreAtLeast(1000)},
	{ID: "first_win", Name: "Victory!", Condition: FirstOccurrence(core.EventWin)},
	{ID: "sound", Name: "Sound Enthusiast", Condition: EventCount(core.EventSoundToggled, 3)},
}

func TestTrackerThresholds(t *testing.T) {
	tests := []struct {
		name string
		ev   core.Event
		want string
	}{
		{"tile below threshold", core.Event{Kind: core.EventMaxTile, Value: 64}, ""},
		{"tile at threshold", core.Event{Kind: core.EventMaxTile, Value: 128}, "tile_128"},
		{"score above threshold", core.Event{Kind: core.EventScore, Value: 1200}, "score_1000"},
		{"score value on tile event", core.Event{Kind: core.EventMaxTile, Value: 1200}, "tile_128"},
		{"first win", core.Event{Kind: core.EventWin}, "first_win"},
		{"unrelated event", core.Event{Kind: core.EventLoss}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(testCatalog)
			got := tr.Observe(tt.ev)
			if tt.want == "" {
				if len(got) != 0 {
					t.Errorf("Observe(%+v) unlocked %v, want nothing", tt.ev, got)
				}
				return
			}
			if len(got) != 1 || got[0].ID != tt.want {
				t.Errorf("Observe(%+v) = %v, want [%s]", tt.ev, got, tt.want)
			}
		})
	}
}

func TestTrackerUnlockIsOneWay(t *testing.T) {
	tr := NewTracker(testCatalog)
	win := core.Event{Kind: core.EventWin}

	if got := tr.Observe(win); len(got) != 1 {
		t.Fatalf("first win unlocked %d achievements, want 1", len(got))
	}
	if got := tr.Observe(win); len(got) != 0 {
		t.Errorf("second win unlocked %v again", got)
	}
	if !tr.Unlocked("first_win") {
		t.Error("first_win should stay unlocked")
	}
}

func TestTrackerEventCount(t *testing.T) {
	tr := NewTracker(testCatalog)
	toggle := core.Event{Kind: core.EventSoundToggled}

	unlocked := tr.ObserveAll([]core.Event{toggle, toggle})
	if len(unlocked) != 0 {
		t.Fatalf("unlocked after 2 toggles: %v", unlocked)
	}
	unlocked = tr.ObserveAll([]core.Event{toggle, toggle})
	if len(unlocked) != 1 || unlocked[0].ID != "sound" {
		t.Fatalf("after 4 toggles unlocked %v, want [sound]", unlocked)
	}

	for _, e := range tr.Entries() {
		if e.ID == "sound" && e.Progress() != "3/3" {
			t.Errorf("Progress() = %q, want 3/3", e.Progress())
		}
	}
}

func TestTrackerEntriesOrder(t *testing.T) {
	tr := NewTracker(testCatalog)
	tr.Observe(core.Event{Kind: core.EventWin})
	tr.Observe(core.Event{Kind: core.EventMaxTile, Value: 256})

	entries := tr.Entries()
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	got := strings.Join(names, ",")
	want := "First 128,Victory!,Scoring King,Sound Enthusiast"
	if got != want {
		t.Errorf("Entries() order = %s, want %s", got, want)
	}
}

func TestTrackerRoundTrip(t *testing.T) {
	tr := NewTracker(testCatalog)
	tr.Observe(core.Event{Kind: core.EventWin})
	tr.Observe(core.Event{Kind: core.EventSoundToggled})

	data, err := tr.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(data, `"first_win":{"unlocked":true}`) {
		t.Errorf("Marshal() = %s, missing first_win without counter", data)
	}
	if !strings.Contains(data, `"sound":{"unlocked":false,"counter":1}`) {
		t.Errorf("Marshal() = %s, missing sound counter", data)
	}

	restored := NewTracker(testCatalog)
	if err := restored.Load(data); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !restored.Unlocked("first_win") {
		t.Error("restored tracker lost first_win")
	}
	restored.ObserveAll([]core.Event{{Kind: core.EventSoundToggled}, {Kind: core.EventSoundToggled}})
	if !restored.Unlocked("sound") {
		t.Error("restored counter should continue from 1")
	}
}

func TestTrackerLoadMalformed(t *testing.T) {
	tr := NewTracker(testCatalog)
	tr.Observe(core.Event{Kind: core.EventWin})

	if err := tr.Load("{not json"); err == nil {
		t.Error("Load() should report malformed data")
	}
	if tr.Unlocked("first_win") {
		t.Error("malformed data should leave a fresh tracker")
	}
	if err := tr.Load(`{"unknown":{"unlocked":true}}`); err != nil {
		t.Errorf("unknown ids should be ignored, got %v", err)
	}
}
