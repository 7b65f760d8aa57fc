// Command beamlab is a thin CLI demo driver for the structural-analysis
// core: it is not the intended host (a browser workbench is, per
// spec.md §1), but exercises the model, solve, modal, loadgen, design and
// diagram packages the way a script consuming the library would. Grounded directly on
// alexiusacademia-gorcb/cmd/root.go's rootCmd + Execute idiom: one
// package, one file per subcommand, flags bound in each file's init().
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "beamlab",
	Short: "3D frame structural-analysis core, CLI demo driver",
	Long: `beamlab - a 3D space-frame structural-analysis core

Solves linear-elastic frame models, extracts free-vibration modes,
generates NSCP-style wind and seismic static-equivalent loads, and runs
steel/RC design checks.

This binary is a thin demo driver over the library packages (model,
solve, modal, loadgen, design, diagram); the intended host is
an event-driven browser workbench, not this CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("beamlab v%s — 3D frame structural-analysis core\n", version)
		fmt.Println("Use 'beamlab --help' to see available commands.")
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func main() {
	Execute()
}
