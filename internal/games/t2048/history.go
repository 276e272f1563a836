package t2048

// DefaultHistoryLimit is the number of snapshots kept for undo.
const DefaultHistoryLimit = 20

// History is a bounded stack of snapshots; the top is the current state.
// When full, pushing evicts the oldest snapshot.
type History struct {
	limit     int
	snapshots []Snapshot
}

// NewHistory creates a history holding at most limit snapshots (minimum 2).
func NewHistory(limit int) *History {
	if limit < 2 {
		limit = 2
	}
	return &History{limit: limit, snapshots: make([]Snapshot, 0, limit)}
}

// Push records a snapshot as the new top.
func (h *History) Push(s Snapshot) {
	if len(h.snapshots) == h.limit {
		copy(h.snapshots, h.snapshots[1:])
		h.snapshots = h.snapshots[:h.limit-1]
	}
	h.snapshots = append(h.snapshots, s)
}

// CanUndo reports whether a previous snapshot exists beneath the top.
func (h *History) CanUndo() bool {
	return len(h.snapshots) >= 2
}

// Undo discards the top snapshot and returns the one beneath it, which
// becomes the new top. It reports false, changing nothing, when fewer than
// two snapshots exist.
func (h *History) Undo() (Snapshot, bool) {
	if !h.CanUndo() {
		return Snapshot{}, false
	}
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return h.snapshots[len(h.snapshots)-1], true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Limit returns the capacity.
func (h *History) Limit() int {
	return h.limit
}

// Snapshots returns a copy of the stack, oldest first.
func (h *History) Snapshots() []Snapshot {
	out := make([]Snapshot, len(h.snapshots))
	copy(out, h.snapshots)
	return out
}

// Clear drops every snapshot.
func (h *History) Clear() {
	h.snapshots = h.snapshots[:0]
}
