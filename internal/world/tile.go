// Package world holds the tile grid, the procedural world generator and
// start-position selection.
package world

import (
	"fmt"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// TileType is the closed set of terrain kinds.
type TileType uint8

const (
	Grass TileType = iota
	Water
	Tree
	Earth
	Sand
	Wall

	numTileTypes
)

// TileTypes lists every tile type in declaration order.
var TileTypes = [...]TileType{Grass, Water, Tree, Earth, Sand, Wall}

var tileNames = [numTileTypes]string{
	Grass: "grass",
	Water: "water",
	Tree:  "tree",
	Earth: "earth",
	Sand:  "sand",
	Wall:  "wall",
}

// Layout symbols, used by FromLayout and Grid.String.
var tileSymbols = [numTileTypes]rune{
	Grass: '.',
	Water: '~',
	Tree:  'T',
	Earth: '_',
	Sand:  ':',
	Wall:  '#',
}

// String returns the lowercase tile name used in config and tileset files.
func (t TileType) String() string {
	if t >= numTileTypes {
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
	return tileNames[t]
}

// Symbol returns the single-character layout symbol for the tile type.
func (t TileType) Symbol() rune {
	if t >= numTileTypes {
		return '?'
	}
	return tileSymbols[t]
}

// Collidable reports whether the tile type blocks movement.
func (t TileType) Collidable() bool {
	switch t {
	case Water, Tree, Wall:
		return true
	default:
		return false
	}
}

// ParseTileType resolves a tile name.
func ParseTileType(name string) (TileType, error) {
	for i, n := range tileNames {
		if n == name {
			return TileType(i), nil
		}
	}
	return 0, fmt.Errorf("world: unknown tile type %q", name)
}

func tileTypeForSymbol(r rune) (TileType, bool) {
	for i, s := range tileSymbols {
		if s == r {
			return TileType(i), true
		}
	}
	return 0, false
}

// Tile is the canonical, immutable description of one tile type.
type Tile struct {
	Type       TileType
	Collidable bool
	Image      core.Glyph
}

// Tileset holds one Tile prototype per defined type.
// It is built once and never mutated after being handed to the generator.
type Tileset struct {
	tiles   [numTileTypes]Tile
	defined [numTileTypes]bool
}

// NewTileset creates an empty tileset.
func NewTileset() *Tileset {
	return &Tileset{}
}

// Define sets the image for a tile type. Collidability always follows the type.
func (ts *Tileset) Define(t TileType, img core.Glyph) {
	if t >= numTileTypes {
		return
	}
	ts.tiles[t] = Tile{Type: t, Collidable: t.Collidable(), Image: img}
	ts.defined[t] = true
}

// Get returns the prototype for a tile type.
func (ts *Tileset) Get(t TileType) (Tile, bool) {
	if ts == nil || t >= numTileTypes || !ts.defined[t] {
		return Tile{}, false
	}
	return ts.tiles[t], true
}

// Has reports whether the tile type is defined.
func (ts *Tileset) Has(t TileType) bool {
	_, ok := ts.Get(t)
	return ok
}

// Missing returns the first of types that has no prototype.
func (ts *Tileset) Missing(types ...TileType) (TileType, bool) {
	for _, t := range types {
		if !ts.Has(t) {
			return t, true
		}
	}
	return 0, false
}
