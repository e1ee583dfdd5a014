package world

import (
	"errors"
	"testing"
)

func TestFromLayout(t *testing.T) {
	g, err := FromLayout(fullTileset(), 48,
		"..~",
		"T:#",
	)
	if err != nil {
		t.Fatalf("FromLayout: %v", err)
	}

	if g.Cols() != 3 || g.Rows() != 2 || g.TileSize() != 48 {
		t.Fatalf("grid = %dx%d @%d", g.Cols(), g.Rows(), g.TileSize())
	}

	typ, err := g.TypeAt(2, 1)
	if err != nil || typ != Wall {
		t.Errorf("TypeAt(2, 1) = %v, %v, expected wall", typ, err)
	}
	if g.String() != "..~\nT:#" {
		t.Errorf("String() = %q", g.String())
	}
}

func TestFromLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
	}{
		{"empty", nil},
		{"ragged", []string{"...", ".."}},
		{"unknown symbol", []string{"..X"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromLayout(fullTileset(), 48, tc.layout...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGridCollidable(t *testing.T) {
	g, _ := FromLayout(fullTileset(), 48,
		".~",
		"T:",
	)

	tests := []struct {
		col, row int
		expected bool
	}{
		{0, 0, false},
		{1, 0, true},
		{0, 1, true},
		{1, 1, false},
		{-1, 0, true},
		{2, 0, true},
		{0, 2, true},
	}

	for _, tc := range tests {
		if got := g.Collidable(tc.col, tc.row); got != tc.expected {
			t.Errorf("Collidable(%d, %d) = %v, expected %v", tc.col, tc.row, got, tc.expected)
		}
	}
}

func TestGridNotReady(t *testing.T) {
	var g *Grid

	if g.Ready() {
		t.Error("nil grid should not be ready")
	}
	if _, err := g.TypeAt(0, 0); !errors.Is(err, ErrNotReady) {
		t.Errorf("TypeAt on nil grid: %v, expected ErrNotReady", err)
	}
	if !g.Collidable(0, 0) {
		t.Error("nil grid should block movement")
	}
}

func TestGridTileOutOfBounds(t *testing.T) {
	g, _ := FromLayout(fullTileset(), 48, "..")

	if _, err := g.Tile(5, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Tile(5, 0) error = %v, expected ErrOutOfBounds", err)
	}
}

func TestGridTileMissingPrototype(t *testing.T) {
	ts := NewTileset()
	ts.Define(Grass, fullTileset().tiles[Grass].Image)
	g, _ := FromLayout(ts, 48, ".#")

	if _, err := g.Tile(0, 0); err != nil {
		t.Errorf("Tile(0, 0): %v", err)
	}

	var missing *MissingTileAssetError
	if _, err := g.Tile(1, 0); !errors.As(err, &missing) || missing.Type != Wall {
		t.Errorf("Tile(1, 0) error = %v, expected missing wall", err)
	}
}
