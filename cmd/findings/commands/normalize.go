package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"compliance-ai/backend/internal/service"
)

// NewNormalizeCmd creates the normalize command.
func NewNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Normalize findings into text, scored sources and a question",
		Long: `Normalize findings given as a JSON list, a JSON object, a bulleted or
numbered text, or a single value.

Every finding gets a text (or a "Segnalazione N" placeholder), its sources
with relevance percentage and tier, and the question to ask the assistant.

Examples:
  findings normalize nc.json
  echo '"- Manca il manuale"' | findings normalize -`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNormalize,
	}
	return cmd
}

func runNormalize(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	data, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	items, err := service.NewFindingService().Normalize(cmd.Context(), data)
	if err != nil {
		return fmt.Errorf("normalizing findings: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), outputFormat, items)
}
