package core

import "fmt"

// PlayerID identifies a seat at the board.
type PlayerID string

const (
	Player1 PlayerID = "player1"
	Player2 PlayerID = "player2"
)

// PlayerIDs lists the seats in turn order.
var PlayerIDs = []PlayerID{Player1, Player2}

// StartPosition is the square every token starts on.
const StartPosition = 1

// NoWinner marks a session nobody has won yet.
const NoWinner = -1

// Player is one participant and their token position.
type Player struct {
	ID       PlayerID
	Name     string
	Position int
}

// DefaultName returns the label used when a player has no name.
func DefaultName(index int) string {
	return fmt.Sprintf("Player %d", index+1)
}

// Session is the whole mutable game state.
// It is replaced wholesale on reset, never patched field by field.
type Session struct {
	Players        []Player
	Current        int // Index of the player to roll next
	WinnerIndex    int // NoWinner until someone lands on the winning square
	RollInProgress bool
	Turns          int // Committed resolutions
}

// NewSession creates a fresh session. Blank or missing names get defaults.
func NewSession(names ...string) Session {
	players := make([]Player, len(PlayerIDs))
	for i, id := range PlayerIDs {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		if name == "" {
			name = DefaultName(i)
		}
		players[i] = Player{ID: id, Name: name, Position: StartPosition}
	}
	return Session{
		Players:     players,
		Current:     0,
		WinnerIndex: NoWinner,
	}
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	c := s
	c.Players = make([]Player, len(s.Players))
	copy(c.Players, s.Players)
	return c
}

// CurrentPlayer returns the player whose turn it is.
func (s Session) CurrentPlayer() Player {
	return s.Players[s.Current]
}

// Winner returns the winning player, if any.
func (s Session) Winner() (Player, bool) {
	if s.WinnerIndex < 0 || s.WinnerIndex >= len(s.Players) {
		return Player{}, false
	}
	return s.Players[s.WinnerIndex], true
}

// Over reports whether the session has a winner.
func (s Session) Over() bool {
	return s.WinnerIndex != NoWinner
}

// Names returns the player names in turn order.
func (s Session) Names() []string {
	names := make([]string, len(s.Players))
	for i, p := range s.Players {
		names[i] = p.Name
	}
	return names
}
