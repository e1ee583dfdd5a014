package world

import "math/rand"

// FindStart picks a uniformly random cell of the desired type and returns
// its pixel position.
func FindStart(g *Grid, desired TileType, rng *rand.Rand) (Position, error) {
	if !g.Ready() {
		return Position{}, ErrNotReady
	}

	var candidates []int
	for i, t := range g.cells {
		if t == desired {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return Position{}, &NoStartPositionError{Type: desired}
	}

	idx := candidates[rng.Intn(len(candidates))]
	col, row := idx%g.cols, idx/g.cols
	return Position{X: col * g.tileSize, Y: row * g.tileSize}, nil
}
