// cmd/gonumstat/memdemo.go
package gonumstat

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/gonumstat/internal/memdemo"
)

// memdemoCmd implements 'memdemo', the catalog of unsafe memory-usage
// patterns paired with their safe alternatives.
var memdemoCmd = &cobra.Command{
	Use:   "memdemo",
	Short: "Demonstrate unsafe memory patterns and safe alternatives",
	Long:  `The 'memdemo' command walks through common Go memory-usage mistakes (aliased slice writes, backing-array retention, stale pointers across append, double close, unchecked indexing) and shows the safe alternative for each.`,
	Run: func(cmd *cobra.Command, args []string) {
		memdemo.RunAll(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(memdemoCmd)
}
