package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"last cell", 29, 24, true},
		{"right edge (exclusive)", 30, 15, false},
		{"bottom edge (exclusive)", 15, 25, false},
		{"outside left", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		w, h, areaW, areaH int
		x, y               int
	}{
		{10, 5, 80, 24, 35, 9},
		{7, 5, 8, 5, 0, 0},
		{20, 5, 10, 5, -5, 0},
	}

	for _, tc := range tests {
		r := CenteredRect(tc.w, tc.h, tc.areaW, tc.areaH)
		if r.X != tc.x || r.Y != tc.y || r.W != tc.w || r.H != tc.h {
			t.Errorf("CenteredRect(%d, %d, %d, %d) = %+v, expected at (%d, %d)",
				tc.w, tc.h, tc.areaW, tc.areaH, r, tc.x, tc.y)
		}
		if r.Right() != r.X+tc.w || r.Bottom() != r.Y+tc.h {
			t.Errorf("Right/Bottom = %d/%d for %+v", r.Right(), r.Bottom(), r)
		}
	}
}
