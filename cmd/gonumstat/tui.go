// cmd/gonumstat/tui.go
package gonumstat

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gonumstat/internal/numstat"
	"github.com/mwiater/gonumstat/internal/tui"
)

// tuiCmd implements 'tui', an interactive statistics explorer. Numbers
// are entered a line at a time and the report updates live.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Explore statistics interactively",
	Long:  `The 'tui' command opens an interactive terminal interface. Type whitespace-separated numbers and press enter to add them to the sample; the descriptive-statistics report updates after every entry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		precision := numstat.ClampPrecision(viper.GetInt("precision"), cmd.ErrOrStderr())
		_, err := tui.New(precision).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
