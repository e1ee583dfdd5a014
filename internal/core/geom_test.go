package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(48, 96, 48, 48)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 48, 96, true},
		{"last pixel", 95, 143, true},
		{"right edge exclusive", 96, 100, false},
		{"bottom edge exclusive", 50, 144, false},
		{"left of rect", 47, 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (25, 25)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{100, 0, 720, 100},
		{-4, 0, 720, 0},
		{724, 0, 720, 720},
		{0, 0, 720, 0},
		{720, 0, 720, 720},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if ClampF(1.7, -1, 1) != 1 || ClampF(-3, -1, 1) != -1 || ClampF(0.25, -1, 1) != 0.25 {
		t.Error("ClampF should restrict values to [-1, 1]")
	}
}
