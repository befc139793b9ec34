package core_test

import (
	"testing"

	"github.com/vovakirdan/ladders-duel/internal/games/ladders/core"
)

func TestSeededDiceDeterministic(t *testing.T) {
	a := core.NewSeededDice(7)
	b := core.NewSeededDice(7)
	for i := 0; i < 200; i++ {
		ra, rb := a.Roll(), b.Roll()
		if ra != rb {
			t.Fatalf("roll %d differs: %d vs %d", i, ra, rb)
		}
		if !core.ValidRoll(ra) {
			t.Fatalf("roll %d out of range: %d", i, ra)
		}
	}
}

func TestSeededDiceCoversAllFaces(t *testing.T) {
	d := core.NewSeededDice(1)
	seen := make(map[int]bool)
	for i := 0; i < 600; i++ {
		seen[d.Roll()] = true
	}
	for f := core.DiceMin; f <= core.DiceMax; f++ {
		if !seen[f] {
			t.Errorf("face %d never rolled", f)
		}
	}
}

type fixedSource int

func (s fixedSource) Intn(n int) int { return int(s) % n }

func TestNewDiceUsesSource(t *testing.T) {
	d := core.NewDice(fixedSource(5))
	if got := d.Roll(); got != 6 {
		t.Errorf("Roll() = %d, want 6", got)
	}
}

func TestScriptedDiceCycles(t *testing.T) {
	d, err := core.NewScriptedDice(3, 6, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{3, 6, 1, 3, 6, 1, 3}
	for i, w := range want {
		if got := d.Roll(); got != w {
			t.Errorf("roll %d = %d, want %d", i, got, w)
		}
	}
}

func TestScriptedDiceRejectsBadFaces(t *testing.T) {
	if _, err := core.NewScriptedDice(); err == nil {
		t.Error("expected error for no faces")
	}
	if _, err := core.NewScriptedDice(1, 7); err == nil {
		t.Error("expected error for face 7")
	}
	if _, err := core.NewScriptedDice(0); err == nil {
		t.Error("expected error for face 0")
	}
}
