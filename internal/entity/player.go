package entity

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

// Mover is anything that can take single directional steps on a grid.
// Each method reports whether the position changed.
type Mover interface {
	MoveUp(grid *world.Grid, screen world.ScreenSettings) bool
	MoveDown(grid *world.Grid, screen world.ScreenSettings) bool
	MoveLeft(grid *world.Grid, screen world.ScreenSettings) bool
	MoveRight(grid *world.Grid, screen world.ScreenSettings) bool
}

// Player is the controllable character.
type Player struct {
	Pos    world.Position
	Facing core.Direction
	speed  int
}

var _ Mover = (*Player)(nil)

// NewPlayer creates a player at pos facing down.
func NewPlayer(pos world.Position, speed int) *Player {
	return &Player{
		Pos:    pos,
		Facing: core.DirDown,
		speed:  speed,
	}
}

// Speed returns the player's step size in pixels per tick.
func (p *Player) Speed() int {
	return p.speed
}

// Update applies every held direction in up, down, left, right order.
// Facing follows input even when the step is blocked, so with several
// directions held the last one in that order wins.
func (p *Player) Update(in core.InputFrame, grid *world.Grid, screen world.ScreenSettings) bool {
	moved := false
	for _, d := range core.Directions {
		if !in.Holding(d) {
			continue
		}
		if p.move(d, grid, screen) {
			moved = true
		}
	}
	return moved
}

// MoveUp steps the player up.
func (p *Player) MoveUp(grid *world.Grid, screen world.ScreenSettings) bool {
	return p.move(core.DirUp, grid, screen)
}

// MoveDown steps the player down.
func (p *Player) MoveDown(grid *world.Grid, screen world.ScreenSettings) bool {
	return p.move(core.DirDown, grid, screen)
}

// MoveLeft steps the player left.
func (p *Player) MoveLeft(grid *world.Grid, screen world.ScreenSettings) bool {
	return p.move(core.DirLeft, grid, screen)
}

// MoveRight steps the player right.
func (p *Player) MoveRight(grid *world.Grid, screen world.ScreenSettings) bool {
	return p.move(core.DirRight, grid, screen)
}

func (p *Player) move(d core.Direction, grid *world.Grid, screen world.ScreenSettings) bool {
	p.Facing = d
	next := TryMove(p.Pos, d, p.speed, grid, screen)
	if next == p.Pos {
		return false
	}
	p.Pos = next
	return true
}

// Frame returns the current animation frame (1 or 2).
func (p *Player) Frame() int {
	return AnimationFrame(p.Pos, p.Facing)
}
