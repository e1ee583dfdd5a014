package world

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
)

// fullTileset defines every tile type.
func fullTileset() *Tileset {
	ts := NewTileset()
	for _, t := range TileTypes {
		ts.Define(t, core.Glyph{Rune: t.Symbol(), Color: core.ColorWhite})
	}
	return ts
}

// layoutSource maps pixel coordinates back to tile cells when generated
// with ScaleFactor 1 and OffsetRange 0.
type layoutSource struct {
	tileSize int
	water    map[[2]int]bool
	samples  int
}

func (s *layoutSource) Sample(x, y, _ float64) float64 {
	s.samples++
	col, row := int(x)/s.tileSize, int(y)/s.tileSize
	if s.water[[2]int{col, row}] {
		return -1
	}
	return 1
}

type constSource float64

func (c constSource) Sample(_, _, _ float64) float64 { return float64(c) }

func smallScreen(cols, rows int) ScreenSettings {
	return ScreenSettings{BaseTileSize: 16, Scale: 3, TilesWide: cols, TilesTall: rows, FPS: 60}
}

func exactOptions(treeProbability float64) GenOptions {
	return GenOptions{
		ScaleFactor:     1,
		WaterThreshold:  -0.8,
		OffsetRange:     0,
		TreeProbability: treeProbability,
	}
}
