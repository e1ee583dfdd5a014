package adventure

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-adventure/internal/assets"
	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/noise"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

type constSource float64

func (c constSource) Sample(_, _, _ float64) float64 { return float64(c) }

func init() {
	noise.Register("test-ocean", "all water", func(noise.Params) noise.Source { return constSource(-1) })
	noise.Register("test-plain", "all grass", func(noise.Params) noise.Source { return constSource(1) })
}

func newGame(t *testing.T, source string, mutate func(*config.Settings)) *Game {
	t.Helper()

	pack, err := assets.Default()
	if err != nil {
		t.Fatalf("assets.Default: %v", err)
	}
	cfg := config.DefaultSettings()
	if mutate != nil {
		mutate(&cfg)
	}

	g, err := New(Options{Settings: cfg, Pack: pack, Noise: source})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNewValidates(t *testing.T) {
	pack, _ := assets.Default()

	if _, err := New(Options{Settings: config.DefaultSettings(), Pack: pack, Noise: "nope"}); err == nil {
		t.Error("unknown noise source should fail")
	}
	if _, err := New(Options{Settings: config.DefaultSettings()}); err == nil {
		t.Error("missing pack should fail")
	}

	bad := config.DefaultSettings()
	bad.Player.Speed = 0
	if _, err := New(Options{Settings: bad, Pack: pack}); err == nil {
		t.Error("invalid settings should fail")
	}
}

func TestResetPlacesPlayerOnStartTile(t *testing.T) {
	g := newGame(t, "", nil)

	if g.State().Ready {
		t.Fatal("game should not be ready before Reset")
	}
	if err := g.Reset(context.Background(), 42); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if !g.State().Ready {
		t.Fatal("game should be ready after Reset")
	}
	p := g.Player()
	typ, err := g.Grid().TypeAt(p.Pos.X/48, p.Pos.Y/48)
	if err != nil || typ != world.Grass {
		t.Errorf("player starts on %v (%v), expected grass", typ, err)
	}
	if p.Pos.X%48 != 0 || p.Pos.Y%48 != 0 {
		t.Errorf("start %+v is not tile aligned", p.Pos)
	}
	if p.Facing != core.DirDown {
		t.Errorf("Facing = %s, expected down", p.Facing)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, "", nil)
	g2 := newGame(t, "", nil)

	for _, g := range []*Game{g1, g2} {
		if err := g.Reset(context.Background(), 12345); err != nil {
			t.Fatalf("Reset: %v", err)
		}
	}

	for i := 0; i < 200; i++ {
		var in core.InputFrame
		switch {
		case i < 50:
			in = core.FrameOf(core.ActionRight)
		case i < 120:
			in = core.FrameOf(core.ActionDown, core.ActionLeft)
		case i == 150:
			in = core.FrameOf(core.ActionRestart)
		default:
			in = core.FrameOf(core.ActionUp)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestResetRetriesWithoutStartTile(t *testing.T) {
	g := newGame(t, "test-ocean", func(s *config.Settings) { s.World.MaxAttempts = 4 })

	err := g.Reset(context.Background(), 1)

	var noStart *world.NoStartPositionError
	if !errors.As(err, &noStart) {
		t.Fatalf("Reset = %v, expected NoStartPositionError", err)
	}
	if !errors.Is(err, world.ErrNoStartPosition) {
		t.Error("error should match ErrNoStartPosition")
	}
	if snap := g.Snapshot(); snap.Attempts != 4 {
		t.Errorf("attempts = %d, expected 4", snap.Attempts)
	}
	if g.State().Ready || g.Err() == nil {
		t.Error("failed reset should leave the game not ready with an error")
	}
}

func TestResetStartOnWater(t *testing.T) {
	g := newGame(t, "test-ocean", func(s *config.Settings) { s.Player.StartTile = "water" })

	if err := g.Reset(context.Background(), 1); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if g.Snapshot().Attempts != 1 {
		t.Errorf("attempts = %d, expected 1", g.Snapshot().Attempts)
	}

	// Surrounded by water, the player cannot move but still turns.
	before := g.Player().Pos
	g.Step(core.FrameOf(core.ActionLeft))
	if g.Player().Pos != before || g.Player().Facing != core.DirLeft {
		t.Errorf("player = %+v facing %s", g.Player().Pos, g.Player().Facing)
	}
}

func TestResetMissingTileIsPermanent(t *testing.T) {
	pack, err := assets.Parse([]byte(`
tiles:
  grass: {rune: ","}
  water: {rune: "~"}
player:
  up: ["^", "A"]
  down: ["v", "V"]
  left: ["<", "{"]
  right: [">", "}"]
`), "partial.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	g, err := New(Options{Settings: config.DefaultSettings(), Pack: pack})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = g.Reset(context.Background(), 1)

	var missing *world.MissingTileAssetError
	if !errors.As(err, &missing) {
		t.Fatalf("Reset = %v, expected MissingTileAssetError", err)
	}
	if g.Snapshot().Attempts != 1 {
		t.Errorf("attempts = %d, permanent errors should not retry", g.Snapshot().Attempts)
	}
}

func TestFailedRegenerateKeepsWorld(t *testing.T) {
	g := newGame(t, "", nil)
	if err := g.Reset(context.Background(), 7); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	layout := g.Snapshot().Layout

	g.noiseName = "test-ocean"
	if err := g.Regenerate(context.Background()); err == nil {
		t.Fatal("regenerating an ocean with a grass start should fail")
	}

	if g.Snapshot().Layout != layout || !g.State().Ready {
		t.Error("failed regeneration should keep the previous world")
	}
}

func TestStepPause(t *testing.T) {
	g := newGame(t, "test-plain", func(s *config.Settings) { s.World.TreeProbability = 0 })
	if err := g.Reset(context.Background(), 3); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	g.Step(core.FrameOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Player().Pos
	res := g.Step(core.FrameOf(core.ActionDown, core.ActionRight))
	if res.Moved || g.Player().Pos != before {
		t.Error("paused game should not move the player")
	}

	g.Step(core.FrameOf(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestStepMovesOnOpenPlain(t *testing.T) {
	g := newGame(t, "test-plain", func(s *config.Settings) { s.World.TreeProbability = 0 })
	if err := g.Reset(context.Background(), 3); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	g.player.Pos = world.Position{X: 240, Y: 240}
	res := g.Step(core.FrameOf(core.ActionRight))

	if !res.Moved || g.Player().Pos != (world.Position{X: 244, Y: 240}) {
		t.Errorf("pos = %+v moved=%v, expected (244, 240)", g.Player().Pos, res.Moved)
	}
	if res.State.Tick != 1 {
		t.Errorf("tick = %d, expected 1", res.State.Tick)
	}
}

func TestRestartChangesWorld(t *testing.T) {
	g := newGame(t, "", nil)
	if err := g.Reset(context.Background(), 99); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	seed := g.Seed()

	g.Step(core.FrameOf(core.ActionRestart))

	snap := g.Snapshot()
	if snap.Seed == seed || snap.Worlds != 2 || snap.Tick != 0 {
		t.Errorf("after restart snapshot = %+v", snap)
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, "", nil)
	dst := core.NewScreen(40, 16)

	g.Render(dst)
	if !strings.Contains(dst.String(), "Generating world") {
		t.Errorf("expected loading overlay:\n%s", dst)
	}

	if err := g.Reset(context.Background(), 5); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	g.Render(dst)

	if !strings.HasPrefix(dst.Row(0), " Adventure  seed 5  noise perlin") {
		t.Errorf("HUD = %q", dst.Row(0))
	}

	p := g.Player()
	sprite := g.pack.Sprites.Glyph(p.Facing, p.Frame())
	x := (40-32)/2 + p.Pos.X*2/48
	y := 2 + p.Pos.Y/48
	if got := dst.GetCell(x, y); got.Rune != sprite.Rune || got.Color != sprite.Color {
		t.Errorf("cell at (%d, %d) = %+v, expected player sprite %+v", x, y, got, sprite)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, "", nil)
	if err := g.Reset(context.Background(), 5); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	dst := core.NewScreen(30, 10)
	g.Render(dst)
	if !strings.Contains(dst.String(), "Window too small") {
		t.Errorf("expected too-small overlay:\n%s", dst)
	}
}
