package entity

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

const (
	// animationPeriod is the pixel distance of one full walk cycle.
	animationPeriod = 30
	// animationSwitch is where the cycle flips to the second frame.
	animationSwitch = 15
)

// AnimationFrame selects the walk frame from position alone: 1 when the
// coordinate along the facing axis is in the first half of the cycle, else 2.
func AnimationFrame(pos world.Position, dir core.Direction) int {
	c := pos.X
	if dir.Vertical() {
		c = pos.Y
	}
	if ((c%animationPeriod)+animationPeriod)%animationPeriod < animationSwitch {
		return 1
	}
	return 2
}

// Sprites holds two walk frames per facing direction.
type Sprites [4][2]core.Glyph

// Glyph returns the sprite for a facing and frame (1 or 2).
func (s *Sprites) Glyph(dir core.Direction, frame int) core.Glyph {
	if dir < core.DirUp || dir > core.DirRight {
		dir = core.DirDown
	}
	if frame != 2 {
		frame = 1
	}
	return s[dir][frame-1]
}

// Set assigns both frames for a direction.
func (s *Sprites) Set(dir core.Direction, first, second core.Glyph) {
	if dir < core.DirUp || dir > core.DirRight {
		return
	}
	s[dir] = [2]core.Glyph{first, second}
}
