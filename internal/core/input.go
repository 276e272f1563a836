package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to intents (move left, undo) rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Enter - place a mark, select
	ActionBack           // Esc - go back to menu
	ActionRestart        // R - start a new round at any time
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
	ActionUndo           // U, Z - take back the last move
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionUndo:
		return "Undo"
	default:
		return "Unknown"
	}
}

// InputFrame holds everything the player did during one simulation tick:
// the semantic actions and any characters typed (for word games).
type InputFrame struct {
	Actions map[Action]bool
	Runes   []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Type appends a typed character to the frame.
func (f *InputFrame) Type(r rune) {
	f.Runes = append(f.Runes, r)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Runes) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Runes = f.Runes[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Runes = append(clone.Runes, f.Runes...)
	return clone
}

// MinSwipeDistance is the smallest drag, in cells, treated as a swipe.
const MinSwipeDistance = 2

// Swipe classifies a pointer drag by its dominant axis.
// dx grows to the right, dy grows downward. Drags shorter than
// MinSwipeDistance on both axes are not swipes.
func Swipe(dx, dy int) (Action, bool) {
	if Abs(dx) < MinSwipeDistance && Abs(dy) < MinSwipeDistance {
		return ActionNone, false
	}
	if Abs(dx) > Abs(dy) {
		if dx > 0 {
			return ActionRight, true
		}
		return ActionLeft, true
	}
	if dy > 0 {
		return ActionDown, true
	}
	return ActionUp, true
}
