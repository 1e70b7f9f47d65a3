// cmd/gonumstat/list_commands.go
package gonumstat

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// commandsCmd implements 'list commands', which prints the available
// commands and subcommands in a hierarchical, indented, two-column format.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Long:  `The 'commands' subcommand lists all commands and subcommands in a hierarchical, indented format, with the command path in the first column and its short description in the second column.`,
	Run: func(cmd *cobra.Command, args []string) {
		listAllCommands(cmd.OutOrStdout(), rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

// listAllCommands walks the command tree starting from root and writes
// each visible command path and short description in a padded, two-column
// layout.
func listAllCommands(w io.Writer, root *cobra.Command) {
	entries := collectCommandData(root, "", "")

	maxPathLength := 0
	for _, entry := range entries {
		if len(entry.path) > maxPathLength {
			maxPathLength = len(entry.path)
		}
	}

	fmt.Fprintln(w, "Commands and Subcommands:")
	for _, entry := range entries {
		fmt.Fprintf(w, "  %s%s%s\n", entry.path, strings.Repeat(" ", maxPathLength-len(entry.path)+2), entry.description)
	}
}

type commandInfo struct {
	path        string
	description string
}

// collectCommandData flattens the command tree into path/description
// pairs, indenting each level and skipping hidden and help commands.
func collectCommandData(cmd *cobra.Command, currentPath string, indent string) []commandInfo {
	fullPath := cmd.Name()
	if currentPath != "" {
		fullPath = currentPath + " " + cmd.Name()
	}

	entries := []commandInfo{{
		path:        indent + fullPath,
		description: cmd.Short,
	}}

	for _, subCmd := range cmd.Commands() {
		if subCmd.Hidden || subCmd.Name() == "help" || subCmd.Name() == "completion" {
			continue
		}
		entries = append(entries, collectCommandData(subCmd, fullPath, indent+"  ")...)
	}

	return entries
}
