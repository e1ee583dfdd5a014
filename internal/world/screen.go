package world

import "github.com/vovakirdan/tui-adventure/internal/core"

// ScreenSettings describes the pixel geometry of the world.
type ScreenSettings struct {
	BaseTileSize int // Source art size in pixels
	Scale        int // Upscale factor
	TilesWide    int
	TilesTall    int
	FPS          int
}

// DefaultScreen returns a 16x12 world of 48px tiles at 60 ticks per second.
func DefaultScreen() ScreenSettings {
	return ScreenSettings{
		BaseTileSize: 16,
		Scale:        3,
		TilesWide:    16,
		TilesTall:    12,
		FPS:          60,
	}
}

// TileSize returns the scaled tile edge in pixels.
func (s ScreenSettings) TileSize() int {
	return s.BaseTileSize * s.Scale
}

// Width returns the world width in pixels.
func (s ScreenSettings) Width() int {
	return s.TileSize() * s.TilesWide
}

// Height returns the world height in pixels.
func (s ScreenSettings) Height() int {
	return s.TileSize() * s.TilesTall
}

// Position is a pixel coordinate of a tile-sized entity's top-left corner.
type Position struct {
	X, Y int
}

// Clamp restricts p so a tile-sized box at p stays on screen.
func (s ScreenSettings) Clamp(p Position) Position {
	ts := s.TileSize()
	return Position{
		X: core.Clamp(p.X, 0, s.Width()-ts),
		Y: core.Clamp(p.Y, 0, s.Height()-ts),
	}
}
