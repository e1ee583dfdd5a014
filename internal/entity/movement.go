// Package entity implements the player: tile-box movement with collision
// against the world grid, facing, and sprite animation.
package entity

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

// TryMove returns where a tile-sized box at pos ends up after one step of
// speed pixels in dir. The candidate is clamped to the screen; if any cell
// the box would cover is collidable, pos is returned unchanged.
// A nil or unpopulated grid blocks every move. Collision uses the grid's
// tile size; the screen only bounds the position.
func TryMove(pos world.Position, dir core.Direction, speed int, grid *world.Grid, screen world.ScreenSettings) world.Position {
	if !grid.Ready() {
		return pos
	}

	next := pos
	switch dir {
	case core.DirUp:
		next.Y -= speed
	case core.DirDown:
		next.Y += speed
	case core.DirLeft:
		next.X -= speed
	case core.DirRight:
		next.X += speed
	default:
		return pos
	}
	next = screen.Clamp(next)

	if blocked(next, grid) {
		return pos
	}
	return next
}

// blocked checks every grid cell covered by the tile-sized box at p.
// Cells are indexed by the grid's own tile size.
func blocked(p world.Position, grid *world.Grid) bool {
	ts := grid.TileSize()
	if ts <= 0 {
		return true
	}
	box := core.NewRect(p.X, p.Y, ts, ts)

	left, right := box.X/ts, (box.Right()-1)/ts
	top, bottom := box.Y/ts, (box.Bottom()-1)/ts

	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if grid.Collidable(col, row) {
				return true
			}
		}
	}
	return false
}
