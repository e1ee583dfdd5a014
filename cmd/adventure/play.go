package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-adventure/internal/assets"
	"github.com/vovakirdan/tui-adventure/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Explore a world in this terminal",
	Long: `Generate a world and explore it.

Controls:
  W/A/S/D, arrows  - Walk
  P                - Pause
  R                - Generate a new world
  Q/Ctrl+C         - Quit

Examples:
  adventure play
  adventure play --seed 1234
  adventure play --noise billow --preset forest
  adventure play --tileset ./my-tiles.yaml --log adventure.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	w, closeLog, err := openLog()
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(w, "adventure")
	logger.Info("settings loaded", "source", settings.Source, "noise", settings.Noise.Source)

	// Get terminal size
	width, height := 80, 24
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = tw
		height = th
	}

	opts := tui.GameOptions{
		Loader:   assets.Load(flagTileset, logger),
		Settings: settings,
		Seed:     flagSeed,
		Logger:   logger,
	}

	if err := tui.Run(opts, width, height); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
