package adventure

import (
	"fmt"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

const (
	hudHeight = 2 // Status line and separator
	cellWidth = 2 // Terminal columns per tile
)

// MinScreenSize returns the smallest screen that fits the HUD and the world.
func (g *Game) MinScreenSize() (w, h int) {
	return g.screen.TilesWide * cellWidth, g.screen.TilesTall + hudHeight
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	if !g.State().Ready {
		if g.lastErr != nil {
			g.renderOverlay(dst, "World generation failed", "Press R to try another seed")
		} else {
			g.renderOverlay(dst, "Generating world...", "")
		}
		return
	}

	offsetX := (dst.Width() - minW) / 2
	g.renderWorld(dst, offsetX)
	g.renderPlayer(dst, offsetX)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  seed %d  noise %s", g.Title(), g.seed, g.noiseName)
	if g.player != nil {
		hud += fmt.Sprintf("  pos %d,%d  %s", g.player.Pos.X, g.player.Pos.Y, g.player.Facing)
	}
	if g.lastErr != nil {
		hud += "  (regeneration failed)"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWorld draws every tile as two copies of its glyph.
func (g *Game) renderWorld(dst *core.Screen, offsetX int) {
	tiles := g.grid.Tileset()
	for row := 0; row < g.grid.Rows(); row++ {
		for col := 0; col < g.grid.Cols(); col++ {
			t, err := g.grid.TypeAt(col, row)
			if err != nil {
				continue
			}
			tile, ok := tiles.Get(t)
			if !ok {
				continue
			}
			x := offsetX + col*cellWidth
			dst.SetGlyph(x, hudHeight+row, tile.Image)
			dst.SetGlyph(x+1, hudHeight+row, tile.Image)
		}
	}
}

// renderPlayer places the sprite at half-tile horizontal resolution,
// rounding the pixel position to the nearest cell.
func (g *Game) renderPlayer(dst *core.Screen, offsetX int) {
	ts := g.screen.TileSize()
	p := g.player

	x := offsetX + (p.Pos.X*cellWidth+ts/2)/ts
	y := hudHeight + (p.Pos.Y+ts/2)/ts
	sprite := g.pack.Sprites.Glyph(p.Facing, p.Frame())

	dst.SetGlyph(x, y, sprite)
	dst.SetGlyph(x+1, y, sprite)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	textW := max(len([]rune(line1)), len([]rune(line2)))
	boxW := min(textW+4, dst.Width())
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	if line2 != "" {
		dst.DrawTextCentered(box.Y+3, line2)
	}
}
