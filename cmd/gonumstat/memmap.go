// cmd/gonumstat/memmap.go
package gonumstat

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/gonumstat/internal/memmap"
)

// memmapCmd implements 'memmap', which prints the addresses of values in
// the different memory regions of the running process.
var memmapCmd = &cobra.Command{
	Use:   "memmap",
	Short: "Show how variables are laid out in process memory",
	Long:  `The 'memmap' command prints the addresses of a function, package-level variables, a stack local, and a heap allocation, followed by a stack-growth demonstration. It illustrates where different kinds of values live in a Go process.`,
	Run: func(cmd *cobra.Command, args []string) {
		memmap.Print(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(memmapCmd)
}
