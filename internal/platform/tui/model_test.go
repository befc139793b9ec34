package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ladders-duel/internal/core"
	"github.com/vovakirdan/ladders-duel/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "ladders.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelRecordsFinishedMatchOnce(t *testing.T) {
	store := openStore(t)
	g := &stubGame{finishOn: 3}

	m := NewModel(g, store, testConfig())
	m.Init()

	var model tea.Model = m
	for range 8 {
		model = send(model, tick())
	}

	matches, err := store.RecentMatches(stubID, 10)
	if err != nil {
		t.Fatalf("RecentMatches() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("RecentMatches() returned %d matches, expected 1", len(matches))
	}
	got := matches[0]
	if got.Player1 != "Ana" || got.Player2 != "Bo" || got.Winner() != "Bo" || got.Turns != 3 {
		t.Errorf("saved match = %+v", got)
	}

	last, ok := model.(Model).LastMatch()
	if !ok || last.MatchID != got.MatchID {
		t.Errorf("LastMatch() = %+v, %v, expected match %s", last, ok, got.MatchID)
	}
}

func TestModelWithoutStore(t *testing.T) {
	g := &stubGame{finishOn: 1}
	m := NewModel(g, nil, testConfig())
	m.Init()

	model := send(m, tick())
	last, ok := model.(Model).LastMatch()
	if !ok || last.GameID != stubID || last.MatchID != "" {
		t.Errorf("LastMatch() = %+v, %v", last, ok)
	}
}

func TestModelForwardsInput(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig())
	m.Init()

	model := send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, tick(), tick())
	if g.rolls != 1 {
		t.Errorf("rolls = %d, expected 1 (input cleared after a tick)", g.rolls)
	}
	if model.(Model).IsQuitting() {
		t.Error("space should not quit")
	}
}

func TestModelQuitAndBack(t *testing.T) {
	g := &stubGame{finishOn: 2}
	m := NewModel(g, nil, testConfig())
	m.Init()

	model := send(m, keyRunes("b"), tick())
	if model.(Model).BackToMenu() {
		t.Error("back should be ignored while a match is running")
	}

	model = send(model, tick(), keyRunes("b"))
	if !model.(Model).BackToMenu() {
		t.Error("back should leave a finished match")
	}
	if model.View() != "" {
		t.Error("View() should be empty after leaving")
	}

	next, cmd := NewModel(&stubGame{}, nil, testConfig()).Update(keyRunes("q"))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestQuitRequested(t *testing.T) {
	g := &stubGame{finishOn: 1}
	m := NewModel(g, nil, testConfig())
	m.Init()

	tests := []struct {
		name  string
		final tea.Model
		want  bool
	}{
		{"quit key", send(m, keyRunes("q")), true},
		{"back to menu", send(m, tick(), keyRunes("b")), false},
		{"other model", NewMenuModel(nil, testConfig()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quitRequested(tt.final); got != tt.want {
				t.Errorf("quitRequested() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestModelResizeKeepsMatch(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig())
	m.Init()

	model := send(m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if g.resizes != 1 || g.resets != 1 {
		t.Errorf("resizes/resets = %d/%d, expected 1/1", g.resizes, g.resets)
	}
	if !strings.Contains(model.View(), "stub board") {
		t.Error("View() should render the game")
	}
}

func TestMatchFromState(t *testing.T) {
	tests := []struct {
		name  string
		state core.GameState
		ok    bool
	}{
		{"running", core.GameState{Players: []string{"A", "B"}}, false},
		{"finished", core.GameState{Over: true, Players: []string{"A", "B"}, WinnerIndex: 1, Turns: 9}, true},
		{"same names", core.GameState{Over: true, Players: []string{"A", "A"}, WinnerIndex: 1}, true},
		{"one player", core.GameState{Over: true, Players: []string{"A"}}, false},
		{"bad winner", core.GameState{Over: true, Players: []string{"A", "B"}, WinnerIndex: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := MatchFromState("ladders", tt.state)
			if ok != tt.ok {
				t.Fatalf("MatchFromState() ok = %v, expected %v", ok, tt.ok)
			}
			if ok && (rec.GameID != "ladders" || rec.WinnerIndex != tt.state.WinnerIndex || rec.Turns != tt.state.Turns) {
				t.Errorf("MatchFromState() = %+v", rec)
			}
		})
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "ladder", core.ColorGreen)
	s.DrawTextColored(0, 2, "snake", core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() has %d lines, expected 3", len(lines))
	}
	if !strings.Contains(lines[0], "ladder") || !strings.Contains(lines[2], "snake") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
}
