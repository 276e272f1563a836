package core

// EventKind names something notable a game reports to the platform.
type EventKind string

// Event kinds shared by all games. Games may define their own kinds.
const (
	EventScore        EventKind = "score"    // Value: current score
	EventMaxTile      EventKind = "max_tile" // Value: largest tile on the board
	EventMerge        EventKind = "merge"    // Value: tile created by a merge
	EventWin          EventKind = "win"
	EventLoss         EventKind = "loss"
	EventDraw         EventKind = "draw"
	EventSoundToggled EventKind = "sound_toggled" // Value: 1 when enabled, 0 when muted
)

// Event is a single observation emitted by a game step.
type Event struct {
	Kind  EventKind
	Value int
}
