// Package config provides YAML-based settings for the adventure: screen
// geometry, player, world generation and noise parameters.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-adventure/internal/noise"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

// Settings is the complete adventure configuration.
type Settings struct {
	Screen ScreenConfig `yaml:"screen"`
	Player PlayerConfig `yaml:"player"`
	World  WorldConfig  `yaml:"world"`
	Noise  NoiseConfig  `yaml:"noise"`
	Input  InputConfig  `yaml:"input"`

	// Source records where the settings were loaded from.
	Source string `yaml:"-"`
}

// ScreenConfig defines tile geometry and tick rate.
type ScreenConfig struct {
	BaseTileSize int `yaml:"base_tile_size"`
	Scale        int `yaml:"scale"`
	TilesWide    int `yaml:"tiles_wide"`
	TilesTall    int `yaml:"tiles_tall"`
	FPS          int `yaml:"fps"`
}

// PlayerConfig defines player movement and spawn.
type PlayerConfig struct {
	Speed     int    `yaml:"speed"`      // Pixels per tick
	StartTile string `yaml:"start_tile"` // Tile type the player spawns on
}

// WorldConfig defines generator constants and the reset retry budget.
type WorldConfig struct {
	ScaleFactor     float64 `yaml:"scale_factor"`
	WaterThreshold  float64 `yaml:"water_threshold"`
	OffsetRange     float64 `yaml:"offset_range"`
	TreeProbability float64 `yaml:"tree_probability"`
	MaxAttempts     int     `yaml:"max_attempts"`
}

// NoiseConfig selects and tunes the noise source.
type NoiseConfig struct {
	Source    string  `yaml:"source"`
	Octaves   int     `yaml:"octaves"`
	Alpha     float64 `yaml:"alpha"`
	Beta      float64 `yaml:"beta"`
	Frequency float64 `yaml:"frequency"`
	Amplitude float64 `yaml:"amplitude"`
}

// InputConfig defines held-key behaviour.
type InputConfig struct {
	HoldWindowMS int `yaml:"hold_window_ms"`
}

// ScreenSettings returns the world geometry.
func (s Settings) ScreenSettings() world.ScreenSettings {
	return world.ScreenSettings{
		BaseTileSize: s.Screen.BaseTileSize,
		Scale:        s.Screen.Scale,
		TilesWide:    s.Screen.TilesWide,
		TilesTall:    s.Screen.TilesTall,
		FPS:          s.Screen.FPS,
	}
}

// GenOptions returns the generator constants.
func (s Settings) GenOptions() world.GenOptions {
	return world.GenOptions{
		ScaleFactor:     s.World.ScaleFactor,
		WaterThreshold:  s.World.WaterThreshold,
		OffsetRange:     s.World.OffsetRange,
		TreeProbability: s.World.TreeProbability,
	}
}

// NoiseParams returns noise parameters for the given seed.
func (s Settings) NoiseParams(seed int64) noise.Params {
	return noise.Params{
		Seed:      seed,
		Octaves:   s.Noise.Octaves,
		Alpha:     s.Noise.Alpha,
		Beta:      s.Noise.Beta,
		Frequency: s.Noise.Frequency,
		Amplitude: s.Noise.Amplitude,
	}
}

// StartTile returns the parsed spawn tile type.
func (s Settings) StartTile() (world.TileType, error) {
	return world.ParseTileType(s.Player.StartTile)
}

// HoldWindow returns how long a direction stays held after a key press.
func (s Settings) HoldWindow() time.Duration {
	return time.Duration(s.Input.HoldWindowMS) * time.Millisecond
}

// Validate checks that every setting is usable.
func (s Settings) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("screen.base_tile_size", s.Screen.BaseTileSize)
	positive("screen.scale", s.Screen.Scale)
	positive("screen.tiles_wide", s.Screen.TilesWide)
	positive("screen.tiles_tall", s.Screen.TilesTall)
	positive("screen.fps", s.Screen.FPS)
	positive("player.speed", s.Player.Speed)
	positive("world.max_attempts", s.World.MaxAttempts)
	positive("input.hold_window_ms", s.Input.HoldWindowMS)

	if ts := s.ScreenSettings().TileSize(); ts > 0 && s.Player.Speed > ts {
		errs = append(errs, fmt.Errorf("player.speed %d exceeds tile size %d", s.Player.Speed, ts))
	}
	if start, err := s.StartTile(); err != nil {
		errs = append(errs, fmt.Errorf("player.start_tile: %w", err))
	} else if !start.Generated() {
		errs = append(errs, fmt.Errorf("player.start_tile: %s never appears in generated worlds", start))
	}
	if s.World.ScaleFactor <= 0 {
		errs = append(errs, fmt.Errorf("world.scale_factor must be positive, got %v", s.World.ScaleFactor))
	}
	if s.World.OffsetRange < 0 {
		errs = append(errs, fmt.Errorf("world.offset_range must not be negative, got %v", s.World.OffsetRange))
	}
	if p := s.World.TreeProbability; p < 0 || p > 1 {
		errs = append(errs, fmt.Errorf("world.tree_probability must be in [0, 1], got %v", p))
	}
	if !noise.Exists(s.Noise.Source) {
		errs = append(errs, fmt.Errorf("noise.source: unknown source %q", s.Noise.Source))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
