// adventure is a procedurally generated tile adventure for the terminal.
//
// Usage:
//
//	adventure play               - Explore a new world locally
//	adventure serve              - Start SSH server for remote play
//	adventure world              - Print a generated world as text
//	adventure noises             - List available noise sources
//
// Global flags:
//
//	--fps <rate>        - Override tick rate from config
//	--seed <value>      - Set world seed for reproducible worlds
//	--config <path>     - Custom settings YAML
//	--tileset <path>    - Custom tileset YAML
//	--noise <name>      - Noise source for terrain
//	--preset <name>     - World preset: standard, islands, forest, meadow
//	--log <path>        - Write logs to a file
//	--telemetry         - Export traces over OTLP/HTTP
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/noise"
	"github.com/vovakirdan/tui-adventure/internal/telemetry"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagTileset   string
	flagNoise     string
	flagPreset    string
	flagLogPath   string
	flagTelemetry bool

	shutdownTelemetry func(context.Context) error
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "adventure",
	Short: "Adventure - Explore procedurally generated worlds in your terminal",
	Long: `Adventure generates a fresh tile world from noise every time you play:
lakes ringed with sand, meadows dotted with trees, and a hero to walk them.

Available commands:
  play     - Explore a world in this terminal
  serve    - Start SSH server for remote play
  world    - Print a generated world as text
  noises   - List available noise sources

Examples:
  adventure play
  adventure play --seed 42 --preset islands
  adventure serve --ssh :2222
  adventure world --seed 42`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagTileset, "tileset", "", "Path to custom tileset YAML")
	rootCmd.PersistentFlags().StringVar(&flagNoise, "noise", "", "Noise source (see 'adventure noises')")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "World preset: standard, islands, forest, meadow")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagTelemetry, "telemetry", false, "Export traces (also enabled by "+telemetry.EndpointEnv+")")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(worldCmd)
	rootCmd.AddCommand(noisesCmd)
}

// setup reads .env and starts tracing before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env is normal.
	_ = godotenv.Load()

	if !telemetry.Enabled(flagTelemetry) {
		telemetry.Disable()
		return nil
	}

	shutdown, err := telemetry.Setup(cmd.Context())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: telemetry disabled: %v\n", err)
		telemetry.Disable()
		return nil
	}
	shutdownTelemetry = shutdown
	return nil
}

// teardown flushes pending spans.
func teardown(_ *cobra.Command, _ []string) error {
	if shutdownTelemetry == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return shutdownTelemetry(ctx)
}

// loadSettings resolves settings from config files and global flags.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return settings, err
	}

	if flagPreset != "" {
		preset, err := config.ParsePreset(flagPreset)
		if err != nil {
			return settings, err
		}
		config.ApplyPreset(&settings, preset)
	}
	if flagNoise != "" {
		if !noise.Exists(flagNoise) {
			return settings, fmt.Errorf("unknown noise source %q (run 'adventure noises')", flagNoise)
		}
		settings.Noise.Source = flagNoise
	}
	if flagFPS > 0 {
		settings.Screen.FPS = flagFPS
	}

	return settings, settings.Validate()
}

// newLogger creates a structured logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// openLog returns the --log file, or io.Discard when unset. The terminal
// belongs to the TUI, so logs never go to stdout or stderr while playing.
func openLog() (io.Writer, func(), error) {
	if flagLogPath == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
