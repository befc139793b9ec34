package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ladders-duel/internal/core"
	"github.com/vovakirdan/ladders-duel/internal/registry"
	"github.com/vovakirdan/ladders-duel/internal/storage"
)

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	logger     *log.Logger
	quitting   bool
	backToMenu bool
	lastMatch  *storage.MatchRecord
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store runs the game without recording matches.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// WithLogger returns a copy of the model that reports storage failures to l.
func (m Model) WithLogger(l *log.Logger) Model {
	m.logger = l
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu once the match is over or on hold
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.Over || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize keeps the match when the game can follow the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.Over {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Finished {
		m.recordMatch()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordMatch stores the finished match. Storage is best-effort; the game
// continues if the write fails.
func (m *Model) recordMatch() {
	rec, ok := MatchFromState(m.game.ID(), m.gameState)
	if !ok {
		return
	}
	if m.store != nil {
		saved, err := m.store.SaveMatch(rec)
		if err != nil {
			m.warn("could not save match", "game", rec.GameID, "error", err)
		} else {
			rec = saved
		}
	}
	m.lastMatch = &rec
	if m.logger != nil {
		m.logger.Info("match finished", "game", rec.GameID, "winner", rec.Winner(), "turns", rec.Turns, "match", rec.MatchID)
	}
}

func (m *Model) warn(msg string, keyvals ...any) {
	if m.logger != nil {
		m.logger.Warn(msg, keyvals...)
	}
}

// MatchFromState builds the history record of a finished two-player match.
func MatchFromState(gameID string, st core.GameState) (storage.MatchRecord, bool) {
	if !st.Over || len(st.Players) != 2 {
		return storage.MatchRecord{}, false
	}
	if st.WinnerIndex < 0 || st.WinnerIndex > 1 {
		return storage.MatchRecord{}, false
	}
	return storage.MatchRecord{
		GameID:      gameID,
		Player1:     st.Players[0],
		Player2:     st.Players[1],
		WinnerIndex: st.WinnerIndex,
		Turns:       st.Turns,
	}, true
}

// saveScreenshot saves the current screen as plain text under ~/.ladders/screenshots.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".ladders", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastMatch returns the most recently finished match, if any.
func (m Model) LastMatch() (storage.MatchRecord, bool) {
	if m.lastMatch == nil {
		return storage.MatchRecord{}, false
	}
	return *m.lastMatch, true
}

// Run plays the game in the terminal until the user quits or goes back.
// quit is true when the user asked to leave the program, not just the game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (quit bool, err error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	return quitRequested(finalModel), nil
}

// quitRequested reports whether a finished game program ended on a quit key.
func quitRequested(final tea.Model) bool {
	m, ok := final.(Model)
	return ok && m.IsQuitting()
}
