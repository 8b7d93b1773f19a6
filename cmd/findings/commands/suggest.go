package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"compliance-ai/backend/internal/service"
)

var (
	suggestFindings        string
	suggestRecommendations string
)

// NewSuggestCmd creates the suggest command.
func NewSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Build the quick questions of an assessment chat",
		Long: `Build up to four quick questions from the non conformities and the
recommendations of an assessment.

Examples:
  findings suggest --findings nc.json
  findings suggest --findings nc.json --recommendations rec.json --format yaml`,
		Args: cobra.NoArgs,
		RunE: runSuggest,
	}

	cmd.Flags().StringVar(&suggestFindings, "findings", "", "File with the non conformities (\"-\" for stdin)")
	cmd.Flags().StringVar(&suggestRecommendations, "recommendations", "", "File with the recommendations")

	return cmd
}

func runSuggest(cmd *cobra.Command, args []string) error {
	var findingsData, recommendationsData []byte
	var err error

	if suggestFindings != "" {
		if findingsData, err = readInput(cmd.InOrStdin(), suggestFindings); err != nil {
			return err
		}
	}
	if suggestRecommendations != "" {
		if suggestRecommendations == "-" && suggestFindings == "-" {
			return fmt.Errorf("only one input can be read from stdin")
		}
		if recommendationsData, err = readInput(cmd.InOrStdin(), suggestRecommendations); err != nil {
			return err
		}
	}

	suggestions, err := service.NewFindingService().Suggestions(cmd.Context(), findingsData, recommendationsData)
	if err != nil {
		return fmt.Errorf("building suggestions: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), outputFormat, suggestions)
}
