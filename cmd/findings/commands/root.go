package commands

import (
	"github.com/spf13/cobra"
)

var outputFormat string

// NewRootCmd creates the findings command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "findings",
		Short: "Normalize assessment findings offline",
		Long: `Normalize the non conformities and recommendations produced by an
assessment, the same way the API does, without running the server.

Input is read from a file, or from stdin when the file is "-".

Examples:
  findings normalize nc.json
  cat nc.json | findings normalize - --format yaml
  findings suggest --findings nc.json --recommendations rec.json`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatJSON, "Output format: json or yaml")

	cmd.AddCommand(NewNormalizeCmd())
	cmd.AddCommand(NewSuggestCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
