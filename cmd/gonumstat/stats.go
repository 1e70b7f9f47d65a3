// cmd/gonumstat/stats.go
package gonumstat

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gonumstat/internal/numstat"
)

var runStats = numstat.Run

var (
	jsonOutput bool
	debugStats bool
)

// statsCmd implements 'stats', which reads whitespace-separated numbers
// from a file or standard input and prints count, sum, mean, median,
// min/max/range, quartiles, and the population standard deviation.
var statsCmd = &cobra.Command{
	Use:   "stats [FILE]",
	Short: "Calculate descriptive statistics for numerical data",
	Long: `The 'stats' command reads whitespace-separated numbers from FILE, or from
standard input when no FILE is given, and prints descriptive statistics:
count, sum, mean, median, minimum, maximum, range, Q1, Q3, and the
population standard deviation. Reading stops at the first token that is
not a number; if no numbers are read at all, the command fails.`,
	Example: `  gonumstat stats data.txt              # Read from file
  cat data.txt | gonumstat stats        # Read from stdin
  echo "1 2 3" | gonumstat stats        # Quick calculation
  gonumstat stats -j data.txt           # JSON output
  gonumstat stats -p 2 data.txt         # 2 decimal places`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return numstat.ErrMultipleInputFiles
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := numstat.Config{
			JSONOutput: viper.GetBool("json"),
			Precision:  viper.GetInt("precision"),
			Debug:      viper.GetBool("debug"),
		}
		if len(args) == 1 {
			cfg.InputFile = args[0]
		}
		cmd.SilenceUsage = true
		return runStats(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "output in JSON format")
	statsCmd.Flags().BoolVar(&debugStats, "debug", false, "pretty-print the computed stats record to stderr")

	viper.BindPFlag("json", statsCmd.Flags().Lookup("json"))
	viper.BindPFlag("debug", statsCmd.Flags().Lookup("debug"))
}
