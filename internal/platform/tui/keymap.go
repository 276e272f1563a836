package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/parlor/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// Games that accept typed letters switch the mapper to text mode: letters
// become runes and the platform keys move to ctrl combinations.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// PlatformAction is a request handled by the platform rather than the game.
type PlatformAction int

const (
	PlatformNone PlatformAction = iota
	PlatformQuit
	PlatformRestart
	PlatformSoundToggle
	PlatformVolumeUp
	PlatformVolumeDown
	PlatformScreenshot
)

// MapPlatformKey returns the platform action bound to a key, if any.
func (km *KeyMapper) MapPlatformKey(msg tea.KeyMsg, text bool) PlatformAction {
	switch msg.String() {
	case "ctrl+c":
		return PlatformQuit
	case "ctrl+s":
		return PlatformScreenshot
	case "ctrl+t":
		return PlatformSoundToggle
	case "ctrl+r":
		return PlatformRestart
	case "+", "=":
		return PlatformVolumeUp
	case "-", "_":
		return PlatformVolumeDown
	case "esc":
		if text {
			return PlatformQuit
		}
	}
	if text {
		return PlatformNone
	}

	switch msg.String() {
	case "q", "b", "esc":
		return PlatformQuit
	case "r":
		return PlatformRestart
	case "m":
		return PlatformSoundToggle
	}
	return PlatformNone
}

// MapKey translates a key message to a game action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, text bool) core.Action {
	switch msg.String() {
	case "up":
		return core.ActionUp
	case "down":
		return core.ActionDown
	case "left":
		return core.ActionLeft
	case "right":
		return core.ActionRight
	case "enter":
		return core.ActionConfirm
	case "ctrl+z":
		return core.ActionUndo
	case "ctrl+p":
		return core.ActionPause
	}
	if text {
		return core.ActionNone
	}

	switch msg.String() {
	case "w", "k":
		return core.ActionUp
	case "s", "j":
		return core.ActionDown
	case "a", "h":
		return core.ActionLeft
	case "d", "l":
		return core.ActionRight
	case " ":
		return core.ActionConfirm
	case "u":
		return core.ActionUndo
	case "p":
		return core.ActionPause
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message. Keys without
// an action are forwarded as typed runes.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, text bool) {
	if action := km.MapKey(msg, text); action != core.ActionNone {
		frame.Set(action)
		return
	}
	if msg.Type == tea.KeyRunes && !msg.Alt {
		for _, r := range msg.Runes {
			frame.Type(r)
		}
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionAchievements
	MenuActionProfile
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "left", "h":
		return MenuActionLeft
	case "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "a":
		return MenuActionAchievements
	case "p":
		return MenuActionProfile
	}

	return MenuActionNone
}
