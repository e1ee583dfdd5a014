package world

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// Grid is a fully populated tile map. Cells store tile types; the tile
// prototypes live in the shared Tileset.
type Grid struct {
	cols     int
	rows     int
	tileSize int
	cells    []TileType
	tiles    *Tileset
}

// newGrid wraps populated cells. cells must hold cols*rows entries.
func newGrid(cols, rows, tileSize int, cells []TileType, tiles *Tileset) *Grid {
	return &Grid{
		cols:     cols,
		rows:     rows,
		tileSize: tileSize,
		cells:    cells,
		tiles:    tiles,
	}
}

// FromLayout builds a grid from text rows of tile symbols
// ('.' grass, '~' water, 'T' tree, '_' earth, ':' sand, '#' wall).
// All rows must have the same length.
func FromLayout(tiles *Tileset, tileSize int, layout ...string) (*Grid, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("world: empty layout")
	}

	cols := len([]rune(layout[0]))
	cells := make([]TileType, 0, cols*len(layout))
	for row, line := range layout {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("world: layout row %d has %d cells, expected %d", row, len(runes), cols)
		}
		for col, r := range runes {
			t, ok := tileTypeForSymbol(r)
			if !ok {
				return nil, fmt.Errorf("world: unknown layout symbol %q at (%d, %d)", r, col, row)
			}
			cells = append(cells, t)
		}
	}

	return newGrid(cols, len(layout), tileSize, cells, tiles), nil
}

// Ready reports whether the grid is populated.
func (g *Grid) Ready() bool {
	return g != nil && g.cols > 0 && g.rows > 0 && len(g.cells) == g.cols*g.rows
}

// Cols returns the grid width in tiles.
func (g *Grid) Cols() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// Rows returns the grid height in tiles.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return g.rows
}

// TileSize returns the tile edge in pixels.
func (g *Grid) TileSize() int {
	if g == nil {
		return 0
	}
	return g.tileSize
}

// Tileset returns the prototypes the grid was built with.
func (g *Grid) Tileset() *Tileset {
	if g == nil {
		return nil
	}
	return g.tiles
}

func (g *Grid) inBounds(col, row int) bool {
	return core.NewRect(0, 0, g.cols, g.rows).Contains(col, row)
}

// TypeAt returns the tile type of a cell.
func (g *Grid) TypeAt(col, row int) (TileType, error) {
	if !g.Ready() {
		return 0, ErrNotReady
	}
	if !g.inBounds(col, row) {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, col, row)
	}
	return g.cells[row*g.cols+col], nil
}

// Tile returns the prototype of a cell.
func (g *Grid) Tile(col, row int) (Tile, error) {
	t, err := g.TypeAt(col, row)
	if err != nil {
		return Tile{}, err
	}
	tile, ok := g.tiles.Get(t)
	if !ok {
		return Tile{}, &MissingTileAssetError{Type: t}
	}
	return tile, nil
}

// Collidable reports whether a cell blocks movement. Cells outside the grid
// and cells of an unpopulated grid block.
func (g *Grid) Collidable(col, row int) bool {
	t, err := g.TypeAt(col, row)
	if err != nil {
		return true
	}
	return t.Collidable()
}

// Count returns how many cells hold the given type.
func (g *Grid) Count(t TileType) int {
	if !g.Ready() {
		return 0
	}
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(col, row int, t TileType)) {
	if !g.Ready() {
		return
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(col, row, g.cells[row*g.cols+col])
		}
	}
}

// String renders the grid with layout symbols, one row per line.
func (g *Grid) String() string {
	if !g.Ready() {
		return ""
	}
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.cols; col++ {
			sb.WriteRune(g.cells[row*g.cols+col].Symbol())
		}
	}
	return sb.String()
}
