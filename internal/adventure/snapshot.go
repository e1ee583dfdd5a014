package adventure

import "github.com/vovakirdan/tui-adventure/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Seed     int64
	Worlds   int
	Attempts int
	PlayerX  int
	PlayerY  int
	Facing   core.Direction
	Paused   bool
	Layout   string // Grid rendered with tile symbols
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Seed:     g.seed,
		Worlds:   g.worlds,
		Attempts: g.attempts,
		Paused:   g.paused,
		Layout:   g.grid.String(),
	}
	if g.player != nil {
		s.PlayerX = g.player.Pos.X
		s.PlayerY = g.player.Pos.Y
		s.Facing = g.player.Facing
	}
	return s
}
