package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ladders-duel/internal/core"
	"github.com/vovakirdan/ladders-duel/internal/registry"
)

const stubID = "stub_duel"

func init() {
	registry.Register(stubID, func() registry.Game {
		return &stubGame{}
	})
}

// stubGame ends its match after finishOn steps; player 2 always wins.
type stubGame struct {
	finishOn int
	steps    int
	over     bool
	resets   int
	resizes  int
	rolls    int
	players  []string
}

func (g *stubGame) ID() string          { return stubID }
func (g *stubGame) Title() string       { return "Stub Duel" }
func (g *stubGame) Description() string { return "Two seats, no dice" }

func (g *stubGame) SetPlayers(names ...string) {
	g.players = append([]string(nil), names...)
}

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.over = false
}

func (g *stubGame) Resize(int, int) {
	g.resizes++
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	if in.Has(core.ActionRoll) {
		g.rolls++
	}
	finished := false
	if !g.over && g.finishOn > 0 && g.steps == g.finishOn {
		g.over = true
		finished = true
	}
	return core.StepResult{State: g.State(), Finished: finished}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub board")
}

func (g *stubGame) State() core.GameState {
	players := g.players
	if len(players) == 0 {
		players = []string{"Ana", "Bo"}
	}
	st := core.GameState{Players: players, Turns: g.steps}
	if g.over {
		st.Over = true
		st.WinnerIndex = 1
		st.Winner = players[1]
	}
	return st
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60, Seed: 1}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func tick() tea.Msg {
	return TickMsg(time.Now())
}
