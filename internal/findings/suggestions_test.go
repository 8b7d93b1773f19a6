package findings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliance-ai/backend/internal/findings"
)

func TestBuildSuggestions(t *testing.T) {
	t.Run("No findings and no recommendations", func(t *testing.T) {
		got := findings.BuildSuggestions(nil, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "Priorità interventi", got[0].Label)
	})

	t.Run("Two findings and a recommendation", func(t *testing.T) {
		nc := findings.Parse([]any{"Manca il pulsante di arresto", map[string]any{"testo": "Ripari mobili"}, "terza"})
		rec := findings.Parse("- Installare un arresto di emergenza")

		got := findings.BuildSuggestions(nc, rec)

		require.Len(t, got, 4)
		assert.Equal(t, "Spiega la principale non conformità", got[0].Label)
		assert.Equal(t, `Puoi spiegarmi meglio questa segnalazione e come risolverla? "Manca il pulsante di arresto"`, got[0].Question)
		assert.Equal(t, "Priorità interventi", got[1].Label)
		assert.Equal(t, "Piano di azione", got[2].Label)
		assert.Equal(t, "Spiega un'altra non conformità", got[3].Label)
		assert.Equal(t, `Puoi spiegarmi meglio questa segnalazione e come risolverla? "Ripari mobili"`, got[3].Question)
	})

	t.Run("Finding without text is skipped", func(t *testing.T) {
		nc := findings.Parse([]any{map[string]any{"fonti": "x"}})
		got := findings.BuildSuggestions(nc, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "Priorità interventi", got[0].Label)
	})

	t.Run("Recommendations only", func(t *testing.T) {
		got := findings.BuildSuggestions(nil, findings.Parse("a"))
		require.Len(t, got, 2)
		assert.Equal(t, "Piano di azione", got[1].Label)
	})
}

func TestQuestionForFinding(t *testing.T) {
	assert.Equal(t, "Puoi spiegarmi meglio questa segnalazione e come risolverla?", findings.QuestionForFinding("   "))
	assert.Equal(t, `Puoi spiegarmi meglio questa segnalazione e come risolverla? "a "b""`, findings.QuestionForFinding(` a "b" `))
}
