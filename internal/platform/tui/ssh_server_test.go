package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func selectStub(t *testing.T, s SessionModel) SessionModel {
	t.Helper()
	i := stubIndex(s.menu)
	if i < 0 {
		t.Fatal("stub game missing from the menu")
	}
	s.menu.cursor = i
	return s
}

func TestSessionFlow(t *testing.T) {
	s := selectStub(t, NewSessionModel(nil, testConfig(), "alice"))

	s = send(s, enter).(SessionModel)
	if s.screen != screenNames {
		t.Fatalf("screen = %d after selecting a game, expected names", s.screen)
	}

	s = send(s, enter, keyRunes("Bo"), enter).(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("screen = %d after naming players, expected game", s.screen)
	}
	g, ok := s.game.game.(*stubGame)
	if !ok {
		t.Fatalf("game is %T", s.game.game)
	}
	if len(g.players) != 2 || g.players[0] != "alice" || g.players[1] != "Bo" {
		t.Errorf("players = %v, expected [alice Bo]", g.players)
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}

	g.finishOn = 1
	s = send(s, tick(), keyRunes("b")).(SessionModel)
	if s.screen != screenMenu || s.quitting {
		t.Errorf("screen = %d, quitting = %v after back, expected menu", s.screen, s.quitting)
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), "alice")

	s = send(s, tea.KeyMsg{Type: tea.KeyTab}).(SessionModel)
	if s.screen != screenScoreboard {
		t.Fatalf("screen = %d after tab, expected scoreboard", s.screen)
	}

	s = send(s, tea.KeyMsg{Type: tea.KeyEscape}).(SessionModel)
	if s.screen != screenMenu || s.quitting {
		t.Errorf("screen = %d, quitting = %v after esc", s.screen, s.quitting)
	}
}

func TestSessionNamesCancel(t *testing.T) {
	s := selectStub(t, NewSessionModel(nil, testConfig(), "alice"))
	s = send(s, enter, tea.KeyMsg{Type: tea.KeyEscape}).(SessionModel)
	if s.screen != screenMenu {
		t.Errorf("screen = %d after esc in the name prompt, expected menu", s.screen)
	}
}

func TestSessionRemembersNames(t *testing.T) {
	s := selectStub(t, NewSessionModel(nil, testConfig(), "alice"))
	s = send(s, enter, enter, keyRunes("Bo"), enter).(SessionModel)

	g := s.game.game.(*stubGame)
	g.finishOn = 1
	s = selectStub(t, send(s, tick(), keyRunes("b")).(SessionModel))
	s = send(s, enter).(SessionModel)

	names := s.names.Names()
	if names[0] != "alice" || names[1] != "Bo" {
		t.Errorf("prompt defaults = %v, expected [alice Bo]", names)
	}
}

func TestSessionQuit(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), "alice")
	next, cmd := s.Update(keyRunes("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
	if next.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.TickRate != 60 || cfg.DBPath != "~/.ladders/ladders.db" {
		t.Errorf("DefaultSSHServerConfig() = %+v", cfg)
	}
}
