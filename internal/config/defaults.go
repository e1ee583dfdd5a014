package config

import (
	_ "embed"
)

//go:embed defaults/adventure.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the hardcoded settings, used when no file and no
// embedded default can be read.
func DefaultSettings() Settings {
	return Settings{
		Screen: ScreenConfig{
			BaseTileSize: 16,
			Scale:        3,
			TilesWide:    16,
			TilesTall:    12,
			FPS:          60,
		},
		Player: PlayerConfig{
			Speed:     4,
			StartTile: "grass",
		},
		World: WorldConfig{
			ScaleFactor:     0.01,
			WaterThreshold:  -0.8,
			OffsetRange:     1000,
			TreeProbability: 0.15,
			MaxAttempts:     3,
		},
		Noise: NoiseConfig{
			Source:    "perlin",
			Octaves:   3,
			Alpha:     2,
			Beta:      2,
			Frequency: 0.1,
			Amplitude: 2.5,
		},
		Input: InputConfig{
			HoldWindowMS: 150,
		},
		Source: "builtin",
	}
}
