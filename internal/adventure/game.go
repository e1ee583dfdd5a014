// Package adventure is the game itself: it owns a generated world and the
// player, advances them one fixed tick at a time and draws them into a
// core.Screen.
package adventure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/cenkalti/backoff/v5"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vovakirdan/tui-adventure/internal/assets"
	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/entity"
	"github.com/vovakirdan/tui-adventure/internal/noise"
	"github.com/vovakirdan/tui-adventure/internal/telemetry"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

// Options configures a new game.
type Options struct {
	Settings config.Settings
	Pack     *assets.Pack
	Noise    string // Registered noise source; empty uses Settings.Noise.Source
	Logger   *log.Logger
}

// Game is one player in one world.
type Game struct {
	settings  config.Settings
	screen    world.ScreenSettings
	gen       world.GenOptions
	startTile world.TileType
	pack      *assets.Pack
	noiseName string
	logger    *log.Logger

	seed     int64
	rng      *rand.Rand
	grid     *world.Grid
	player   *entity.Player
	tick     uint64
	paused   bool
	worlds   int   // Worlds generated since New
	attempts int   // Generation attempts for the current world
	lastErr  error // Last failed reset, cleared on success
}

// New creates a game without a world. Call Reset before stepping.
func New(opts Options) (*Game, error) {
	if err := opts.Settings.Validate(); err != nil {
		return nil, err
	}
	if opts.Pack == nil || opts.Pack.Tiles == nil {
		return nil, errors.New("adventure: no tileset")
	}

	name := opts.Noise
	if name == "" {
		name = opts.Settings.Noise.Source
	}
	if !noise.Exists(name) {
		return nil, fmt.Errorf("adventure: unknown noise source %q", name)
	}

	start, err := opts.Settings.StartTile()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		settings:  opts.Settings,
		screen:    opts.Settings.ScreenSettings(),
		gen:       opts.Settings.GenOptions(),
		startTile: start,
		pack:      opts.Pack,
		noiseName: name,
		logger:    logger,
	}, nil
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Adventure"
}

// Noise returns the name of the noise source worlds are built from.
func (g *Game) Noise() string {
	return g.noiseName
}

// Seed returns the seed of the current world.
func (g *Game) Seed() int64 {
	return g.seed
}

// Screen returns the world geometry.
func (g *Game) Screen() world.ScreenSettings {
	return g.screen
}

// Grid returns the current world, or nil before the first successful Reset.
func (g *Game) Grid() *world.Grid {
	return g.grid
}

// Player returns the player, or nil before the first successful Reset.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Err returns the error of the last failed Reset.
func (g *Game) Err() error {
	return g.lastErr
}

// placement is a generated world with a valid spawn point.
type placement struct {
	grid  *world.Grid
	start world.Position
}

// Reset generates a new world from seed and places the player on it.
// A world without any start tile is regenerated from the continuing rng
// stream, up to world.max_attempts times; any other error is final.
// On failure the previous world, if any, stays in place.
func (g *Game) Reset(ctx context.Context, seed int64) error {
	ctx, span := telemetry.Tracer("adventure").Start(ctx, "adventure.reset")
	defer span.End()

	rng := rand.New(rand.NewSource(seed))
	attempts := 0

	place := func() (placement, error) {
		attempts++

		src, err := noise.Create(g.noiseName, g.settings.NoiseParams(rng.Int63()))
		if err != nil {
			return placement{}, backoff.Permanent(err)
		}

		grid, err := world.Generate(ctx, g.screen, src, g.pack.Tiles, rng, g.gen)
		if err != nil {
			return placement{}, backoff.Permanent(err)
		}

		start, err := world.FindStart(grid, g.startTile, rng)
		if err != nil {
			if errors.Is(err, world.ErrNoStartPosition) {
				g.logger.Debug("world has no start tile, regenerating", "seed", seed, "attempt", attempts, "tile", g.startTile)
				return placement{}, err
			}
			return placement{}, backoff.Permanent(err)
		}
		return placement{grid: grid, start: start}, nil
	}

	p, err := backoff.Retry(ctx, place,
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(uint(g.settings.World.MaxAttempts)),
	)

	span.SetAttributes(
		attribute.Int64("adventure.seed", seed),
		attribute.String("adventure.noise", g.noiseName),
		attribute.Int("adventure.attempts", attempts),
	)

	g.attempts = attempts
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.logger.Error("world generation failed", "seed", seed, "noise", g.noiseName, "attempts", attempts, "err", err)
		g.lastErr = err
		return err
	}

	g.seed = seed
	g.rng = rng
	g.grid = p.grid
	g.player = entity.NewPlayer(p.start, g.settings.Player.Speed)
	g.tick = 0
	g.paused = false
	g.worlds++
	g.lastErr = nil

	g.logger.Info("world generated",
		"seed", seed,
		"noise", g.noiseName,
		"attempts", attempts,
		"start_x", p.start.X,
		"start_y", p.start.Y,
	)
	return nil
}

// Regenerate builds a fresh world with a seed drawn from the current one.
func (g *Game) Regenerate(ctx context.Context) error {
	seed := g.seed + 1
	if g.rng != nil {
		seed = g.rng.Int63()
	}
	return g.Reset(ctx, seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		//nolint:errcheck // Failure is kept in lastErr and shown by Render
		g.Regenerate(context.Background())
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.player == nil {
		return core.StepResult{State: g.State()}
	}

	moved := g.player.Update(in, g.grid, g.screen)
	return core.StepResult{State: g.State(), Moved: moved}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Ready:  g.grid.Ready() && g.player != nil,
		Paused: g.paused,
		Tick:   g.tick,
	}
}
