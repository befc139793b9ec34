package core

import (
	"fmt"
	"math/rand"
)

// Die faces.
const (
	DiceMin = 1
	DiceMax = 6
)

// Dice produces one roll per call.
type Dice interface {
	// Roll returns a face in [DiceMin, DiceMax].
	Roll() int
}

// Source is the randomness behind RandomDice.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// RandomDice rolls a fair six-sided die from a Source.
type RandomDice struct {
	src Source
}

// NewDice creates dice backed by the given source.
func NewDice(src Source) *RandomDice {
	return &RandomDice{src: src}
}

// NewSeededDice creates deterministic dice: the same seed yields the same rolls.
func NewSeededDice(seed int64) *RandomDice {
	return NewDice(rand.New(rand.NewSource(seed)))
}

// Roll returns a uniform face in [1, 6].
func (d *RandomDice) Roll() int {
	return d.src.Intn(DiceMax-DiceMin+1) + DiceMin
}

// ScriptedDice replays a fixed sequence of faces, starting over when exhausted.
type ScriptedDice struct {
	faces []int
	next  int
}

// NewScriptedDice creates dice that return faces in order.
// Every face must be in [1, 6] and at least one face is required.
func NewScriptedDice(faces ...int) (*ScriptedDice, error) {
	if len(faces) == 0 {
		return nil, fmt.Errorf("scripted dice: no faces given")
	}
	for i, f := range faces {
		if !ValidRoll(f) {
			return nil, fmt.Errorf("scripted dice: face %d at index %d is outside %d..%d", f, i, DiceMin, DiceMax)
		}
	}
	out := make([]int, len(faces))
	copy(out, faces)
	return &ScriptedDice{faces: out}, nil
}

// Roll returns the next scripted face.
func (d *ScriptedDice) Roll() int {
	f := d.faces[d.next]
	d.next = (d.next + 1) % len(d.faces)
	return f
}

// ValidRoll reports whether v is a possible die face.
func ValidRoll(v int) bool {
	return v >= DiceMin && v <= DiceMax
}
