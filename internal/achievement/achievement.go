// Package achievement tracks one-way unlockable goals over a stream of game
// events. A game declares its catalog as a list of Definitions; the platform
// feeds every step's events into a Tracker and shows what got unlocked.
package achievement

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vovakirdan/parlor/internal/core"
)

// ConditionKind selects how a Condition is evaluated.
type ConditionKind int

const (
	KindScoreAtLeast ConditionKind = iota
	KindTileAtLeast
	KindEventCount
	KindFirstOccurrence
)

// String returns the kind name.
func (k ConditionKind) String() string {
	switch k {
	case KindScoreAtLeast:
		return "score"
	case KindTileAtLeast:
		return "tile"
	case KindEventCount:
		return "count"
	case KindFirstOccurrence:
		return "first"
	default:
		return "unknown"
	}
}

// Condition is the unlock rule of an achievement. Build one with
// ScoreAtLeast, TileAtLeast, EventCount or FirstOccurrence.
type Condition struct {
	Kind      ConditionKind
	Threshold int
	Event     core.EventKind
}

// ScoreAtLeast unlocks once a reported score reaches n.
func ScoreAtLeast(n int) Condition {
	return Condition{Kind: KindScoreAtLeast, Threshold: n, Event: core.EventScore}
}

// TileAtLeast unlocks once a reported max tile reaches n.
func TileAtLeast(n int) Condition {
	return Condition{Kind: KindTileAtLeast, Threshold: n, Event: core.EventMaxTile}
}

// EventCount unlocks after n events of the given kind.
func EventCount(kind core.EventKind, n int) Condition {
	return Condition{Kind: KindEventCount, Threshold: n, Event: kind}
}

// FirstOccurrence unlocks the first time an event of the given kind happens.
func FirstOccurrence(kind core.EventKind) Condition {
	return Condition{Kind: KindFirstOccurrence, Threshold: 1, Event: kind}
}

// Counted reports whether the condition keeps a persistent counter.
func (c Condition) Counted() bool {
	return c.Kind == KindEventCount
}

// apply evaluates one event. It returns the updated counter and whether the
// condition is now met.
func (c Condition) apply(ev core.Event, counter int) (int, bool) {
	if ev.Kind != c.Event {
		return counter, false
	}
	switch c.Kind {
	case KindScoreAtLeast, KindTileAtLeast:
		return counter, ev.Value >= c.Threshold
	case KindEventCount:
		counter++
		return counter, counter >= c.Threshold
	case KindFirstOccurrence:
		return counter, true
	}
	return counter, false
}

// Definition describes one achievement of a game's catalog.
type Definition struct {
	ID          string
	Name        string
	Description string
	Condition   Condition
}

// Entry is a definition together with its progress.
type Entry struct {
	Definition
	Unlocked bool
	Counter  int
}

// Progress returns a short progress label such as "3/10" for counted
// achievements, or an empty string.
func (e Entry) Progress() string {
	if !e.Condition.Counted() {
		return ""
	}
	return fmt.Sprintf("%d/%d", min(e.Counter, e.Condition.Threshold), e.Condition.Threshold)
}

type progress struct {
	Unlocked bool `json:"unlocked"`
	Counter  *int `json:"counter,omitempty"`
}

// Tracker holds the unlock state of one game's catalog.
type Tracker struct {
	defs    []Definition
	entries map[string]*Entry
}

// NewTracker creates a tracker with every achievement locked.
func NewTracker(defs []Definition) *Tracker {
	t := &Tracker{defs: defs}
	t.reset()
	return t
}

func (t *Tracker) reset() {
	t.entries = make(map[string]*Entry, len(t.defs))
	for _, d := range t.defs {
		t.entries[d.ID] = &Entry{Definition: d}
	}
}

// Observe feeds one event and returns the achievements it unlocked.
// Unlocked achievements never lock again and stop counting.
func (t *Tracker) Observe(ev core.Event) []Definition {
	var unlocked []Definition
	for _, d := range t.defs {
		e := t.entries[d.ID]
		if e.Unlocked {
			continue
		}
		counter, met := d.Condition.apply(ev, e.Counter)
		e.Counter = counter
		if met {
			e.Unlocked = true
			unlocked = append(unlocked, d)
		}
	}
	return unlocked
}

// ObserveAll feeds events in order and returns everything they unlocked.
func (t *Tracker) ObserveAll(events []core.Event) []Definition {
	var unlocked []Definition
	for _, ev := range events {
		unlocked = append(unlocked, t.Observe(ev)...)
	}
	return unlocked
}

// Unlocked reports whether the achievement with the given id is unlocked.
func (t *Tracker) Unlocked(id string) bool {
	e, ok := t.entries[id]
	return ok && e.Unlocked
}

// Entries returns the catalog with progress, unlocked first, then by name.
func (t *Tracker) Entries() []Entry {
	out := make([]Entry, 0, len(t.defs))
	for _, d := range t.defs {
		out = append(out, *t.entries[d.ID])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Unlocked != out[j].Unlocked {
			return out[i].Unlocked
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Load restores progress from its JSON form. Unknown ids are ignored.
// Malformed data resets the tracker and is reported as an error.
func (t *Tracker) Load(data string) error {
	t.reset()
	if data == "" {
		return nil
	}

	var saved map[string]progress
	if err := json.Unmarshal([]byte(data), &saved); err != nil {
		return fmt.Errorf("achievement: malformed progress: %w", err)
	}
	for id, p := range saved {
		e, ok := t.entries[id]
		if !ok {
			continue
		}
		e.Unlocked = p.Unlocked
		if p.Counter != nil && e.Condition.Counted() {
			e.Counter = max(*p.Counter, 0)
		}
	}
	return nil
}

// Marshal returns progress as a JSON object keyed by achievement id.
func (t *Tracker) Marshal() (string, error) {
	out := make(map[string]progress, len(t.defs))
	for _, d := range t.defs {
		e := t.entries[d.ID]
		p := progress{Unlocked: e.Unlocked}
		if d.Condition.Counted() {
			c := e.Counter
			p.Counter = &c
		}
		out[d.ID] = p
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("achievement: cannot encode progress: %w", err)
	}
	return string(data), nil
}
