package world

import (
	"errors"
	"fmt"
)

var (
	// ErrNotReady is returned when querying a grid or tileset that has not
	// been populated yet.
	ErrNotReady = errors.New("world: not ready")

	// ErrNoStartPosition matches any NoStartPositionError via errors.Is.
	ErrNoStartPosition = errors.New("world: no start position")

	// ErrOutOfBounds is returned for cell queries outside the grid.
	ErrOutOfBounds = errors.New("world: cell out of bounds")
)

// MissingTileAssetError reports a tile type the generator needs but the
// tileset does not define.
type MissingTileAssetError struct {
	Type TileType
}

func (e *MissingTileAssetError) Error() string {
	return fmt.Sprintf("world: missing tile asset for %s", e.Type)
}

// NoStartPositionError reports that the grid has no cell of the desired type.
type NoStartPositionError struct {
	Type TileType
}

func (e *NoStartPositionError) Error() string {
	return fmt.Sprintf("world: no %s tile to start on", e.Type)
}

func (e *NoStartPositionError) Unwrap() error {
	return ErrNoStartPosition
}
