package core_test

import (
	"testing"

	"github.com/vovakirdan/ladders-duel/internal/games/ladders/core"
)

func TestSquareToCoordCorners(t *testing.T) {
	tests := []struct {
		name   string
		square int
		size   int
		want   core.Coord
	}{
		{"first square bottom-left", 1, 10, core.Coord{Col: 0, Row: 9}},
		{"end of bottom row", 10, 10, core.Coord{Col: 9, Row: 9}},
		{"second row starts right", 11, 10, core.Coord{Col: 9, Row: 8}},
		{"second row ends left", 20, 10, core.Coord{Col: 0, Row: 8}},
		{"last square odd top row is top-left", 100, 10, core.Coord{Col: 0, Row: 0}},
		{"last square even top row is top-right", 9, 3, core.Coord{Col: 2, Row: 0}},
		{"middle of 3x3", 5, 3, core.Coord{Col: 1, Row: 1}},
		{"2x2 top-left is 4", 4, 2, core.Coord{Col: 0, Row: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.SquareToCoord(tt.square, tt.size)
			if got != tt.want {
				t.Errorf("SquareToCoord(%d, %d) = %v, want %v", tt.square, tt.size, got, tt.want)
			}
		})
	}
}

func TestGeometryRoundTrip(t *testing.T) {
	for _, size := range []int{2, 3, 5, 8, 10, 12} {
		seen := make(map[core.Coord]bool)
		for sq := 1; sq <= size*size; sq++ {
			c := core.SquareToCoord(sq, size)
			if !core.ValidCoord(c, size) {
				t.Fatalf("size %d: square %d mapped off-grid to %v", size, sq, c)
			}
			if seen[c] {
				t.Fatalf("size %d: square %d maps to already used cell %v", size, sq, c)
			}
			seen[c] = true
			if back := core.CoordToSquare(c, size); back != sq {
				t.Errorf("size %d: round trip %d -> %v -> %d", size, sq, c, back)
			}
		}

		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				c := core.Coord{Col: col, Row: row}
				sq := core.CoordToSquare(c, size)
				if !core.ValidSquare(sq, size) {
					t.Fatalf("size %d: %v mapped to invalid square %d", size, c, sq)
				}
				if back := core.SquareToCoord(sq, size); back != c {
					t.Errorf("size %d: round trip %v -> %d -> %v", size, c, sq, back)
				}
			}
		}
	}
}

func TestAdjacentSquaresAreNeighbors(t *testing.T) {
	size := 10
	for sq := 1; sq < size*size; sq++ {
		a := core.SquareToCoord(sq, size)
		b := core.SquareToCoord(sq+1, size)
		dx := a.Col - b.Col
		dy := a.Row - b.Row
		if dx*dx+dy*dy != 1 {
			t.Errorf("squares %d %v and %d %v are not adjacent", sq, a, sq+1, b)
		}
	}
}

func TestValidSquare(t *testing.T) {
	if core.ValidSquare(0, 10) {
		t.Error("square 0 should be invalid")
	}
	if core.ValidSquare(101, 10) {
		t.Error("square 101 should be invalid on 10x10")
	}
	if !core.ValidSquare(100, 10) {
		t.Error("square 100 should be valid on 10x10")
	}
	if core.ValidSquare(1, 0) {
		t.Error("no square is valid on a size 0 board")
	}
}
