package config

import (
	"fmt"
	"strings"
)

// Preset is a named world flavour that adjusts generation settings.
type Preset string

const (
	PresetStandard Preset = "standard"
	PresetIslands  Preset = "islands"
	PresetForest   Preset = "forest"
	PresetMeadow   Preset = "meadow"
)

// Presets lists the available presets.
var Presets = []Preset{PresetStandard, PresetIslands, PresetForest, PresetMeadow}

// ParsePreset converts a string to a Preset.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q", s)
}

// Description returns a short human-readable summary.
func (p Preset) Description() string {
	switch p {
	case PresetStandard:
		return "settings as configured"
	case PresetIslands:
		return "more water, wide beaches"
	case PresetForest:
		return "dense trees"
	case PresetMeadow:
		return "open grass, few ponds"
	default:
		return ""
	}
}

// ApplyPreset adjusts world generation settings for a preset.
func ApplyPreset(cfg *Settings, p Preset) {
	switch p {
	case PresetIslands:
		cfg.World.WaterThreshold = -0.45
		cfg.World.TreeProbability = 0.1
	case PresetForest:
		cfg.World.TreeProbability = 0.35
	case PresetMeadow:
		cfg.World.WaterThreshold = -0.95
		cfg.World.TreeProbability = 0.04
	}
}
