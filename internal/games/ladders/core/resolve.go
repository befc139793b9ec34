package core

import "fmt"

// Slot is the position of a message within one resolution.
type Slot int

const (
	SlotMove     Slot = iota // Move or stay, always present
	SlotRedirect             // Ladder or snake, optional
	SlotOutcome              // Win or next turn, always present
)

// MessageKind classifies a message for presentation.
type MessageKind int

const (
	KindInfo MessageKind = iota
	KindStay
	KindMove
	KindClimb
	KindSlide
	KindWin
	KindTurn
)

// Message is one line of game commentary.
type Message struct {
	Slot Slot
	Kind MessageKind
	Text string
}

// StepKind identifies a replay step.
type StepKind int

const (
	StepMove StepKind = iota
	StepRedirect
	StepOutcome
)

func (k StepKind) String() string {
	switch k {
	case StepMove:
		return "move"
	case StepRedirect:
		return "redirect"
	case StepOutcome:
		return "outcome"
	default:
		return "unknown"
	}
}

// Step is an intermediate state a presentation layer shows in order.
type Step struct {
	Kind     StepKind
	Player   int // Acting player index
	Position int // Acting player's position after this step
	Message  Message
}

// Resolution is the complete outcome of one roll.
type Resolution struct {
	Player    int
	Roll      int
	From      int
	Landed    int // After the move, or From on overshoot
	Final     int // After redirection
	Link      *Link
	Overshoot bool
	Win       bool
	Next      int // Player to roll next; equals Player on a win
	Messages  []Message
	Steps     []Step
}

// Redirected reports whether a snake or ladder was taken.
func (r Resolution) Redirected() bool {
	return r.Link != nil
}

// ResolveTurn applies roll to the current player of s and reports what happened.
// It does not mutate s. Rolls outside [1, 6], a finished session or a bad
// current index yield ok == false and a zero Resolution.
func ResolveTurn(b *Board, s Session, roll int) (Resolution, bool) {
	if b == nil || !ValidRoll(roll) || s.Over() {
		return Resolution{}, false
	}
	if s.Current < 0 || s.Current >= len(s.Players) {
		return Resolution{}, false
	}

	cur := s.Players[s.Current]
	r := Resolution{
		Player: s.Current,
		Roll:   roll,
		From:   cur.Position,
	}

	target := cur.Position + roll
	if target > b.WinningPosition() {
		r.Overshoot = true
		r.Landed = cur.Position
		r.add(StepMove, Message{
			Slot: SlotMove,
			Kind: KindStay,
			Text: fmt.Sprintf("%s rolled a %d. Needs %d to win. Stays on %d.",
				cur.Name, roll, b.WinningPosition()-cur.Position, cur.Position),
		}, r.Landed)
	} else {
		r.Landed = target
		r.add(StepMove, Message{
			Slot: SlotMove,
			Kind: KindMove,
			Text: fmt.Sprintf("%s rolled a %d: %d -> %d.", cur.Name, roll, cur.Position, target),
		}, r.Landed)
	}

	r.Final = r.Landed
	if !r.Overshoot {
		if l, ok := b.LinkAt(r.Landed); ok {
			link := l
			r.Link = &link
			r.Final = l.End
			msg := Message{Slot: SlotRedirect, Kind: KindClimb,
				Text: fmt.Sprintf("%s climbed a ladder to %d!", cur.Name, l.End)}
			if l.Type == LinkSnake {
				msg.Kind = KindSlide
				msg.Text = fmt.Sprintf("%s slid down a snake to %d!", cur.Name, l.End)
			}
			r.add(StepRedirect, msg, r.Final)
		}
	}

	if r.Final == b.WinningPosition() {
		r.Win = true
		r.Next = s.Current
		r.add(StepOutcome, Message{
			Slot: SlotOutcome,
			Kind: KindWin,
			Text: fmt.Sprintf("%s wins! Congratulations!", cur.Name),
		}, r.Final)
		return r, true
	}

	r.Next = (s.Current + 1) % len(s.Players)
	r.add(StepOutcome, turnMessage(s.Players[r.Next].Name), r.Final)
	return r, true
}

// Apply returns a copy of s with r committed: the acting player's position,
// the winner or the next turn, and the turn counter.
func (r Resolution) Apply(s Session) Session {
	next := s.Clone()
	next.Players[r.Player].Position = r.Final
	if r.Win {
		next.WinnerIndex = r.Player
	} else {
		next.Current = r.Next
	}
	next.RollInProgress = false
	next.Turns++
	return next
}

func (r *Resolution) add(kind StepKind, msg Message, pos int) {
	r.Messages = append(r.Messages, msg)
	r.Steps = append(r.Steps, Step{Kind: kind, Player: r.Player, Position: pos, Message: msg})
}

func turnMessage(name string) Message {
	return Message{
		Slot: SlotOutcome,
		Kind: KindTurn,
		Text: fmt.Sprintf("%s's turn. Roll the dice!", name),
	}
}
