package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/parlor/internal/core"
)

type fakeGame struct{ id, title string }

func (g *fakeGame) ID() string                           { return g.id }
func (g *fakeGame) Title() string                        { return g.title }
func (g *fakeGame) Reset(core.RuntimeConfig)             {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen)                  {}
func (g *fakeGame) State() core.GameState                { return core.GameState{} }

func init() {
	Register("zz", func() Game { return &fakeGame{"zz", "Zed"} })
	Register("aa", func() Game { return &fakeGame{"aa", "Alpha"} })
	Register("aa_fast", func() Game { return &fakeGame{"aa_fast", "Alpha Fast"} })
}

func TestListSortedWithFamilies(t *testing.T) {
	got := List()
	want := []GameInfo{
		{ID: "aa", Title: "Alpha", Family: "aa"},
		{ID: "aa_fast", Title: "Alpha Fast", Family: "aa"},
		{ID: "zz", Title: "Zed", Family: "zz"},
	}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestVariant(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"aa", false},
		{"aa_fast", true},
		{"zz", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			info, ok := Lookup(tt.id)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.id)
			}
			if info.Variant() != tt.want {
				t.Errorf("Variant() = %v, want %v", info.Variant(), tt.want)
			}
		})
	}
}

func TestLookupMissing(t *testing.T) {
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup of unregistered id succeeded")
	}
	if Exists("nope") {
		t.Error("Exists of unregistered id is true")
	}
}

func TestCreate(t *testing.T) {
	g, err := Create("zz")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz" || g.Title() != "Zed" {
		t.Errorf("Create returned %s/%s", g.ID(), g.Title())
	}

	other, _ := Create("zz")
	if g == other {
		t.Error("Create returned the same instance twice")
	}

	if _, err := Create("nope"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(nope) error = %v, want ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("zz", func() Game { return &fakeGame{"zz", "Again"} })
}
