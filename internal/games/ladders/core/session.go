package core

// PendingRoll is a drawn and resolved roll that has not been committed yet.
type PendingRoll struct {
	Resolution Resolution
	generation uint64
}

// Controller owns one game session.
// It is not safe for concurrent use; one goroutine drives it.
type Controller struct {
	board      *Board
	dice       Dice
	names      []string
	session    Session
	generation uint64
	last       *Resolution
}

// NewController creates a controller with a fresh session.
// Blank names fall back to "Player 1" and "Player 2".
func NewController(board *Board, dice Dice, names ...string) *Controller {
	c := &Controller{
		board: board,
		dice:  dice,
		names: append([]string(nil), names...),
	}
	c.session = NewSession(c.names...)
	return c
}

// RequestRoll draws a die, resolves it and commits it in one call.
// Returns false without touching the session if a roll is in progress
// or the game is over.
func (c *Controller) RequestRoll() (Resolution, bool) {
	p, ok := c.BeginRoll()
	if !ok {
		return Resolution{}, false
	}
	if !c.Commit(p) {
		return Resolution{}, false
	}
	return p.Resolution, true
}

// BeginRoll guards, marks the roll in progress, draws and resolves without
// committing. The caller replays the result and then calls Commit.
func (c *Controller) BeginRoll() (PendingRoll, bool) {
	if c.session.RollInProgress || c.session.Over() {
		return PendingRoll{}, false
	}
	roll := c.dice.Roll()
	res, ok := ResolveTurn(c.board, c.session, roll)
	if !ok {
		return PendingRoll{}, false
	}
	c.session.RollInProgress = true
	return PendingRoll{Resolution: res, generation: c.generation}, true
}

// Commit applies a pending roll. A roll begun before the last Reset, or
// committed twice, is ignored.
func (c *Controller) Commit(p PendingRoll) bool {
	if p.generation != c.generation || !c.session.RollInProgress {
		return false
	}
	c.session = p.Resolution.Apply(c.session)
	res := p.Resolution
	c.last = &res
	return true
}

// Reset replaces the session with a fresh one. It always succeeds, even mid-roll.
func (c *Controller) Reset() {
	c.generation++
	c.session = NewSession(c.names...)
	c.last = nil
}

// Rename changes the player names and resets the session.
func (c *Controller) Rename(names ...string) {
	c.names = append([]string(nil), names...)
	c.Reset()
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session {
	return c.session.Clone()
}

// Messages returns the messages of the last committed resolution, or the
// opening message for a fresh session.
func (c *Controller) Messages() []Message {
	if c.last == nil {
		return []Message{turnMessage(c.session.CurrentPlayer().Name)}
	}
	out := make([]Message, len(c.last.Messages))
	copy(out, c.last.Messages)
	return out
}

// Last returns the most recent committed resolution.
func (c *Controller) Last() (Resolution, bool) {
	if c.last == nil {
		return Resolution{}, false
	}
	return *c.last, true
}

// Board returns the board the controller plays on.
func (c *Controller) Board() *Board {
	return c.board
}

// Generation counts resets since the controller was created.
func (c *Controller) Generation() uint64 {
	return c.generation
}
