package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/huehunt/internal/core"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapPlayKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"w moves up", keyRune('w'), core.ActionUp, false},
		{"up arrow moves up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"k moves up", keyRune('k'), core.ActionUp, false},
		{"s moves down", keyRune('s'), core.ActionDown, false},
		{"a moves left", keyRune('a'), core.ActionLeft, false},
		{"h moves left", keyRune('h'), core.ActionLeft, false},
		{"d moves right", keyRune('d'), core.ActionRight, false},
		{"right arrow moves right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space confirms", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{"esc shows info", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionInfo, false},
		{"i shows info", keyRune('i'), core.ActionInfo, false},
		{"q quits", keyRune('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key is none", keyRune('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, isQuit := km.MapPlayKey(tt.msg)
			if action != tt.want {
				t.Errorf("action = %v, want %v", action, tt.want)
			}
			if isQuit != tt.wantQuit {
				t.Errorf("isQuit = %v, want %v", isQuit, tt.wantQuit)
			}
		})
	}
}

func TestMapScreenKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want ScreenAction
	}{
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, ScreenActionStart},
		{"space starts", tea.KeyMsg{Type: tea.KeySpace}, ScreenActionStart},
		{"s starts", keyRune('s'), ScreenActionStart},
		{"r restarts", keyRune('r'), ScreenActionStart},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, ScreenActionBack},
		{"b goes back", keyRune('b'), ScreenActionBack},
		{"q quits", keyRune('q'), ScreenActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, ScreenActionQuit},
		{"unbound key is none", keyRune('z'), ScreenActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapScreenKey(tt.msg); got != tt.want {
				t.Errorf("MapScreenKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"k is up", keyRune('k'), MenuActionUp},
		{"j is down", keyRune('j'), MenuActionDown},
		{"enter selects", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"tab opens scoreboard", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"q quits", keyRune('q'), MenuActionQuit},
		{"unbound key is none", keyRune('x'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction() = %v, want %v", got, tt.want)
			}
		})
	}
}
