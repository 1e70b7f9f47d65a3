// cmd/gonumstat/root.go
package gonumstat

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gonumstat/internal/numstat"
)

// precision backs the persistent --precision flag shared by the stats and
// tui commands. Commands read it through viper, not this variable.
var precision int

// rootCmd is the base Cobra command for the gonumstat application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "gonumstat",
	Short: "Numeric statistics and memory demonstrations",
	Long:  `gonumstat is a small toolkit of numeric and memory utilities: a descriptive-statistics calculator for streams of numbers, an interactive statistics explorer, and educational demonstrations of Go memory layout and memory-usage patterns.`,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&precision, "precision", "p", numstat.DefaultPrecision, "decimal precision (0-10)")
	viper.BindPFlag("precision", rootCmd.PersistentFlags().Lookup("precision"))
}
