package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vovakirdan/tui-adventure/internal/noise"
	"github.com/vovakirdan/tui-adventure/internal/telemetry"
)

// GenOptions tunes world generation.
type GenOptions struct {
	ScaleFactor     float64 // Pixel to noise-space scale
	WaterThreshold  float64 // Samples below this become water
	OffsetRange     float64 // Noise offsets are drawn from [0, OffsetRange)
	TreeProbability float64 // Chance for each remaining grass cell to grow a tree
}

// DefaultGenOptions returns the standard generation constants.
func DefaultGenOptions() GenOptions {
	return GenOptions{
		ScaleFactor:     0.01,
		WaterThreshold:  -0.8,
		OffsetRange:     1000,
		TreeProbability: 0.15,
	}
}

// Tile types every generated world uses.
var requiredTiles = []TileType{Grass, Water, Sand, Tree}

// Generated reports whether Generate can place this tile type.
func (t TileType) Generated() bool {
	return slices.Contains(requiredTiles, t)
}

// Generate builds a new world grid in three passes: terrain from noise,
// beaches around water, then trees on the remaining grass.
// The result is fully determined by the rng state and the noise source.
func Generate(ctx context.Context, screen ScreenSettings, src noise.Source, tiles *Tileset, rng *rand.Rand, opts GenOptions) (*Grid, error) {
	ctx, span := telemetry.Tracer("world").Start(ctx, "world.generate")
	defer span.End()

	started := time.Now()

	grid, err := generate(ctx, screen, src, tiles, rng, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("world.width", grid.cols),
		attribute.Int("world.height", grid.rows),
		attribute.Int("world.water", grid.Count(Water)),
		attribute.Int("world.sand", grid.Count(Sand)),
		attribute.Int("world.trees", grid.Count(Tree)),
		attribute.Int("world.grass", grid.Count(Grass)),
		attribute.Int64("world.generation_us", time.Since(started).Microseconds()),
	)
	return grid, nil
}

func generate(ctx context.Context, screen ScreenSettings, src noise.Source, tiles *Tileset, rng *rand.Rand, opts GenOptions) (*Grid, error) {
	if t, missing := tiles.Missing(requiredTiles...); missing {
		return nil, &MissingTileAssetError{Type: t}
	}
	if src == nil || rng == nil {
		return nil, errors.New("world: generate: nil noise source or rng")
	}

	cols, rows, ts := screen.TilesWide, screen.TilesTall, screen.TileSize()
	if cols <= 0 || rows <= 0 || ts <= 0 {
		return nil, fmt.Errorf("world: generate: invalid screen %dx%d tiles of %dpx", cols, rows, ts)
	}

	cells := make([]TileType, cols*rows)

	if err := terrainPass(ctx, cells, cols, rows, ts, src, rng, opts); err != nil {
		return nil, err
	}
	beachPass(cells, cols, rows)
	treePass(cells, rng, opts.TreeProbability)

	return newGrid(cols, rows, ts, cells, tiles), nil
}

// terrainPass samples the noise field at each tile's pixel origin.
func terrainPass(ctx context.Context, cells []TileType, cols, rows, ts int, src noise.Source, rng *rand.Rand, opts GenOptions) error {
	offsetX := rng.Float64() * opts.OffsetRange
	offsetY := rng.Float64() * opts.OffsetRange

	for row := 0; row < rows; row++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("world: generate: %w", err)
		}
		y := (float64(row*ts) + offsetY) * opts.ScaleFactor
		for col := 0; col < cols; col++ {
			x := (float64(col*ts) + offsetX) * opts.ScaleFactor
			if src.Sample(x, y, 0) < opts.WaterThreshold {
				cells[row*cols+col] = Water
			} else {
				cells[row*cols+col] = Grass
			}
		}
	}
	return nil
}

// beachPass turns grass in the Moore neighbourhood of water into sand.
// Water is never changed, so the pass does not depend on scan order.
func beachPass(cells []TileType, cols, rows int) {
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if cells[row*cols+col] != Water {
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					c, r := col+dx, row+dy
					if c < 0 || c >= cols || r < 0 || r >= rows {
						continue
					}
					if cells[r*cols+c] == Grass {
						cells[r*cols+c] = Sand
					}
				}
			}
		}
	}
}

// treePass draws once per grass cell in row-major order.
func treePass(cells []TileType, rng *rand.Rand, p float64) {
	for i, t := range cells {
		if t == Grass && rng.Float64() < p {
			cells[i] = Tree
		}
	}
}
