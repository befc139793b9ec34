// Package ladders provides the two-player Snakes & Ladders game.
// Turn rules live in the core subpackage; this package replays each
// resolution on the platform tick and draws the board.
package ladders

import (
	"math/rand"

	"github.com/vovakirdan/ladders-duel/internal/config"
	platformcore "github.com/vovakirdan/ladders-duel/internal/core"
	"github.com/vovakirdan/ladders-duel/internal/games/ladders/core"
	"github.com/vovakirdan/ladders-duel/internal/registry"
)

// Phase is the presentation state of the current turn.
type Phase int

const (
	PhaseIdle   Phase = iota // Waiting for a roll
	PhaseTumble              // Dice animation
	PhaseReplay              // Showing resolution steps one by one
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTumble:
		return "tumble"
	case PhaseReplay:
		return "replay"
	default:
		return "unknown"
	}
}

// logSize is the number of message lines kept for display.
const logSize = 6

// variant binds a registered game ID to a bundled layout.
type variant struct {
	id       string
	title    string
	layoutID string
}

var (
	classic  = variant{id: "ladders", title: "Snakes & Ladders", layoutID: config.LayoutClassic}
	serpents = variant{id: "ladders_serpents", title: "Snakes & Ladders: Serpents", layoutID: config.LayoutSerpents}
)

// Game implements registry.Game for Snakes & Ladders.
type Game struct {
	variant variant
	layout  config.LayoutConfig
	board   *core.Board
	ctrl    *core.Controller
	names   []string

	rng   *rand.Rand // Seeds the dice
	faces *rand.Rand // Tumble faces only, never the real roll

	tick       uint64
	phase      Phase
	phaseTicks int
	pending    core.PendingRoll
	stepIndex  int
	shown      []int // Token positions as currently displayed
	face       int   // Die face on screen, 0 before the first roll
	log        []core.Message

	paused    bool
	tooSmall  bool
	layoutErr error

	screenW int
	screenH int
}

// Package-level variables for configuration
var (
	configPath   string
	playerNames  []string
	pacingPreset = config.PacingNormal
)

// SetConfigPath sets a custom layout file used instead of the variant's layout.
func SetConfigPath(path string) {
	configPath = path
}

// SetPlayerNames sets the default player names for new games.
func SetPlayerNames(names ...string) {
	playerNames = append([]string(nil), names...)
}

// SetPacing sets the replay speed preset for new games.
func SetPacing(preset config.PacingPreset) {
	pacingPreset = preset
}

func init() {
	registry.Register(classic.id, func() registry.Game {
		return New()
	})
	registry.Register(serpents.id, func() registry.Game {
		return NewSerpents()
	})
}

// New creates a game on the classic layout.
func New() *Game {
	return newGame(classic)
}

// NewSerpents creates a game on the serpents layout.
func NewSerpents() *Game {
	return newGame(serpents)
}

func newGame(v variant) *Game {
	return &Game{
		variant: v,
		names:   append([]string(nil), playerNames...),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.title
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if data := config.GetDefaultYAML(g.variant.layoutID); data != nil {
		if cfg, err := config.ParseLayout(data); err == nil {
			return cfg.Description
		}
	}
	return ""
}

// SetPlayers names the two players. Takes effect on the next Reset.
func (g *Game) SetPlayers(names ...string) {
	g.names = append([]string(nil), names...)
}

// Reset loads the layout and starts a fresh match.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.faces = rand.New(rand.NewSource(cfg.Seed ^ 0x5eed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.paused = false
	g.layoutErr = nil

	board, layout, err := LoadBoard(configPath, g.variant.layoutID)
	if err != nil {
		g.layoutErr = err
		g.board = nil
		g.ctrl = nil
		return
	}
	config.ApplyPacingPreset(&layout, pacingPreset)
	g.layout = layout
	g.board = board
	g.ctrl = core.NewController(board, core.NewDice(g.rng), g.names...)

	g.checkSize()
	g.restart()
}

// restart resets the match on the current board. Any replay in flight is dropped.
func (g *Game) restart() {
	if g.ctrl == nil {
		return
	}
	g.ctrl.Reset()
	g.phase = PhaseIdle
	g.phaseTicks = 0
	g.pending = core.PendingRoll{}
	g.stepIndex = 0
	g.face = 0
	g.syncShown()
	g.log = g.ctrl.Messages()
}

// Resize adapts to a new terminal size without losing the match.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkSize()
}

func (g *Game) checkSize() {
	if g.board == nil {
		g.tooSmall = false
		return
	}
	l := g.computeLayout()
	g.tooSmall = g.screenW < l.minW || g.screenH < l.minH
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.ctrl == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionRestart) {
		g.restart()
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) && !g.tooSmall {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	finished := false
	switch g.phase {
	case PhaseIdle:
		if input.Has(platformcore.ActionRoll) || input.Has(platformcore.ActionConfirm) {
			g.beginRoll()
		}
	case PhaseTumble:
		g.advanceTumble()
	case PhaseReplay:
		finished = g.advanceReplay()
	}

	return platformcore.StepResult{State: g.State(), Finished: finished}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Paused: g.paused || g.tooSmall,
		Busy:   g.phase != PhaseIdle,
	}
	if g.ctrl == nil {
		return st
	}
	s := g.ctrl.Session()
	st.Players = s.Names()
	st.Turns = s.Turns
	if w, ok := s.Winner(); ok {
		st.Over = true
		st.Winner = w.Name
		st.WinnerIndex = s.WinnerIndex
	}
	return st
}

// Board returns the board in play, or nil if the layout failed to load.
func (g *Game) Board() *core.Board {
	return g.board
}

// Layout returns the layout in play.
func (g *Game) Layout() config.LayoutConfig {
	return g.layout
}

// LayoutError returns the error that stopped the layout from loading.
func (g *Game) LayoutError() error {
	return g.layoutErr
}

func (g *Game) syncShown() {
	s := g.ctrl.Session()
	g.shown = make([]int, len(s.Players))
	for i, p := range s.Players {
		g.shown[i] = p.Position
	}
}

func (g *Game) pushLog(m core.Message) {
	g.log = append(g.log, m)
	if len(g.log) > logSize {
		g.log = g.log[len(g.log)-logSize:]
	}
}
