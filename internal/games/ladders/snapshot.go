package ladders

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateRolling     GameStateType = "rolling"
	StateWin         GameStateType = "win"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateLayoutError GameStateType = "layout_error"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Phase     string
	Positions []int // Committed positions
	Shown     []int // Positions on screen
	Current   int
	Winner    int // -1 until someone wins
	Turns     int
	Face      int
	Log       []string
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Phase:  g.phase.String(),
		Face:   g.face,
		Winner: -1,
		State:  StatePlaying,
	}
	if g.ctrl == nil {
		snap.State = StateLayoutError
		return snap
	}

	s := g.ctrl.Session()
	snap.Positions = make([]int, len(s.Players))
	for i, p := range s.Players {
		snap.Positions[i] = p.Position
	}
	snap.Shown = append([]int(nil), g.shown...)
	snap.Current = s.Current
	snap.Winner = s.WinnerIndex
	snap.Turns = s.Turns
	for _, m := range g.log {
		snap.Log = append(snap.Log, m.Text)
	}

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.paused:
		snap.State = StatePaused
	case s.Over():
		snap.State = StateWin
	case g.phase != PhaseIdle:
		snap.State = StateRolling
	}
	return snap
}
