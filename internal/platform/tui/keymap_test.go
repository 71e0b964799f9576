package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyToFrame(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     []core.Action
		wantQuit bool
	}{
		{"space flaps and starts", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionFlap, core.ActionStart}, false},
		{"up flaps", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionFlap}, false},
		{"w flaps", runeKey('w'), []core.Action{core.ActionFlap}, false},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionStart}, false},
		{"m mutes", runeKey('m'), []core.Action{core.ActionMute}, false},
		{"q quits", runeKey('q'), []core.Action{core.ActionQuit}, true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionQuit}, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, []core.Action{core.ActionQuit}, true},
		{"unbound key", runeKey('x'), nil, false},
	}

	keys := DefaultKeyMap()
	all := []core.Action{core.ActionFlap, core.ActionStart, core.ActionMute, core.ActionQuit}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			quit := keys.MapKeyToFrame(tc.msg, &frame)

			if quit != tc.wantQuit {
				t.Errorf("quit = %v, expected %v", quit, tc.wantQuit)
			}
			want := map[core.Action]bool{}
			for _, a := range tc.want {
				want[a] = true
			}
			for _, a := range all {
				if frame.Has(a) != want[a] {
					t.Errorf("frame.Has(%s) = %v, expected %v", a, frame.Has(a), want[a])
				}
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}
	for _, b := range keys.ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
}
