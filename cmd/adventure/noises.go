package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-adventure/internal/noise"
)

var noisesCmd = &cobra.Command{
	Use:   "noises",
	Short: "List all available noise sources",
	Long:  `Shows the noise sources that can shape a world's terrain.`,
	Args:  cobra.NoArgs,
	Run:   runNoises,
}

func runNoises(cmd *cobra.Command, _ []string) {
	sources := noise.List()
	out := cmd.OutOrStdout()

	if len(sources) == 0 {
		fmt.Fprintln(out, "No noise sources available.")
		return
	}

	fmt.Fprintln(out, "Available noise sources:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range sources {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Terrain")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-------")

	for _, s := range sources {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, s.Name, s.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'adventure play --noise <name>' to explore one.")
}
