// Command linprog solves exact-arithmetic linear and integer programs
// described in YAML files. All input and output values are rationals in
// "n" or "n/d" form; no floating point is involved anywhere.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linprog/logger"
)

var (
	// Global flags.
	maxNodes int
	verbose  bool
)

// rootCmd is the base command; subcommands carry the actual solvers.
var rootCmd = &cobra.Command{
	Use:   "linprog",
	Short: "Exact rational LP/ILP solver",
	Long: `linprog solves linear programs with exact rational arithmetic:
two-phase simplex for the relaxation, branch-and-bound for integrality,
plus assignment and transportation front ends.

Problem files are YAML; every numeric field is a rational literal such
as "3", "0.25" or "1/3" (decimals convert losslessly).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.Set(logger.Logger().Level(zerolog.DebugLevel))
		} else {
			logger.Disable()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&maxNodes, "max-nodes", 0,
		"branch-and-bound node budget (0 = unlimited)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log pivots, phases and branch decisions to stderr")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(assignmentCmd)
	rootCmd.AddCommand(transportationCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
