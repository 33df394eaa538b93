package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/huehunt/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapPlayKey translates a key message to an in-round action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapPlayKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	// Cursor movement and selection
	switch key {
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "i", "esc":
		return core.ActionInfo, false
	}

	return core.ActionNone, false
}

// ScreenAction represents an action on the idle and game-over screens.
type ScreenAction int

const (
	ScreenActionNone ScreenAction = iota
	ScreenActionStart
	ScreenActionBack
	ScreenActionQuit
)

// MapScreenKey translates a key to an idle/game-over screen action.
func (km *KeyMapper) MapScreenKey(msg tea.KeyMsg) ScreenAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return ScreenActionQuit
	case "enter", " ", "s", "r":
		return ScreenActionStart
	case "b", "esc":
		return ScreenActionBack
	}

	return ScreenActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
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
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
