package findings

import (
	"fmt"
	"strings"

	"compliance-ai/backend/internal/model"
)

const maxSuggestions = 4

const (
	questionPriorities = "Quali sono le priorità di intervento e i rischi principali in base a questo assessment?"
	questionActionPlan = "Puoi propormi un piano di azione step-by-step per risolvere le non conformità e applicare le raccomandazioni?"
	questionExplain    = "Puoi spiegarmi meglio questa segnalazione e come risolverla?"
)

// QuestionForFinding builds the question asked when the user wants a single
// finding explained.
func QuestionForFinding(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return questionExplain
	}
	return fmt.Sprintf(`%s "%s"`, questionExplain, text)
}

// BuildSuggestions returns at most four quick questions, in this order: the
// first finding, the generic priorities question, the action plan (only when
// recommendations exist) and the second finding.
func BuildSuggestions(findings, recommendations []Unit) []model.Suggestion {
	suggestions := make([]model.Suggestion, 0, maxSuggestions)

	if len(findings) > 0 {
		if text := Normalize(findings[0]).Text; text != "" {
			suggestions = append(suggestions, model.Suggestion{
				Label:    "Spiega la principale non conformità",
				Question: QuestionForFinding(text),
			})
		}
	}

	suggestions = append(suggestions, model.Suggestion{
		Label:    "Priorità interventi",
		Question: questionPriorities,
	})

	if len(recommendations) > 0 {
		suggestions = append(suggestions, model.Suggestion{
			Label:    "Piano di azione",
			Question: questionActionPlan,
		})
	}

	if len(findings) > 1 {
		if text := Normalize(findings[1]).Text; text != "" {
			suggestions = append(suggestions, model.Suggestion{
				Label:    "Spiega un'altra non conformità",
				Question: QuestionForFinding(text),
			})
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
