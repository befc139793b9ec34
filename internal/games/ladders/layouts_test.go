package ladders

import (
	"testing"

	"github.com/vovakirdan/ladders-duel/internal/config"
	"github.com/vovakirdan/ladders-duel/internal/games/ladders/core"
)

func TestBoardFromLayoutClassic(t *testing.T) {
	b, err := BoardFromLayout(config.DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}
	want := core.ClassicBoard().Links()
	got := b.Links()
	if len(got) != len(want) {
		t.Fatalf("got %d links, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("link %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBoardFromLayoutRejectsOversize(t *testing.T) {
	cfg := config.LayoutConfig{ID: "huge", BoardSize: MaxBoardSize + 1}
	cfg.ApplyDefaults()
	if _, err := BoardFromLayout(cfg); err == nil {
		t.Error("oversized board should be rejected")
	}
}

func TestBundledLayoutsAreValid(t *testing.T) {
	isolate(t)
	for _, id := range config.DefaultLayoutIDs() {
		if _, _, err := LoadBoard("", id); err != nil {
			t.Errorf("bundled layout %s: %v", id, err)
		}
	}
}
