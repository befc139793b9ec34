package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestNamePromptEntersBothNames(t *testing.T) {
	var m tea.Model = NewNamePrompt(nil, 80, 24)
	m = send(m, keyRunes("Ana"), enter, keyRunes("Bo"))

	p := m.(NamePrompt)
	if p.Done() || p.focus != 1 {
		t.Fatalf("Done() = %v, focus = %d, expected false, 1", p.Done(), p.focus)
	}

	m = send(m, enter)
	p = m.(NamePrompt)
	if !p.Done() {
		t.Fatal("second enter should finish the prompt")
	}
	names := p.Names()
	if names[0] != "Ana" || names[1] != "Bo" {
		t.Errorf("Names() = %v, expected [Ana Bo]", names)
	}
}

func TestNamePromptDefaults(t *testing.T) {
	m := send(NewNamePrompt([]string{"  alice  "}, 80, 24), enter, enter).(NamePrompt)
	names := m.Names()
	if names[0] != "alice" || names[1] != "Player 2" {
		t.Errorf("Names() = %v, expected [alice Player 2]", names)
	}
}

func TestNamePromptFocusWraps(t *testing.T) {
	m := send(NewNamePrompt(nil, 80, 24), tea.KeyMsg{Type: tea.KeyShiftTab}).(NamePrompt)
	if m.focus != 1 {
		t.Errorf("focus = %d after shift+tab, expected 1", m.focus)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyTab}).(NamePrompt)
	if m.focus != 0 {
		t.Errorf("focus = %d after tab, expected 0", m.focus)
	}
}

func TestNamePromptNameLimit(t *testing.T) {
	m := send(NewNamePrompt(nil, 80, 24), keyRunes("Bartholomew the Bold")).(NamePrompt)
	if got := len([]rune(m.inputs[0].Value())); got != nameLimit {
		t.Errorf("name length = %d, expected %d", got, nameLimit)
	}
}

func TestNamePromptCancel(t *testing.T) {
	m := send(NewNamePrompt(nil, 80, 24), tea.KeyMsg{Type: tea.KeyEscape}).(NamePrompt)
	if !m.Canceled() || m.Done() {
		t.Errorf("Canceled() = %v, Done() = %v", m.Canceled(), m.Done())
	}
	if m.View() != "" {
		t.Error("View() should be empty once canceled")
	}
}
