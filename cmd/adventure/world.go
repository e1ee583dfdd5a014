package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-adventure/internal/adventure"
	"github.com/vovakirdan/tui-adventure/internal/assets"
)

var worldCmd = &cobra.Command{
	Use:   "world",
	Short: "Print a generated world as text",
	Long: `Generate a world without starting the game and print its layout.

Each tile is printed as one symbol:
  .  grass    ~  water    T  tree
  :  sand     _  earth    #  wall

The player's start position follows the layout.

Examples:
  adventure world --seed 42
  adventure world --seed 42 --preset islands --noise billow`,
	Args: cobra.NoArgs,
	RunE: runWorld,
}

func runWorld(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, "adventure")
	logger.SetLevel(log.WarnLevel)

	pack, err := assets.LoadFile(flagTileset)
	if err != nil {
		return err
	}

	game, err := adventure.New(adventure.Options{
		Settings: settings,
		Pack:     pack,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := game.Reset(cmd.Context(), seed); err != nil {
		return err
	}

	grid := game.Grid()
	pos := game.Player().Pos
	ts := grid.TileSize()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed: %d  noise: %s  size: %dx%d\n\n", game.Seed(), game.Noise(), grid.Cols(), grid.Rows())
	fmt.Fprintln(out, grid.String())
	fmt.Fprintf(out, "\nstart: (%d, %d) px, tile (%d, %d)\n", pos.X, pos.Y, pos.X/ts, pos.Y/ts)
	return nil
}
