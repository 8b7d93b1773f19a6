package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliance-ai/backend/internal/findings"
	"compliance-ai/backend/internal/service"
)

func TestFindingService_Normalize(t *testing.T) {
	ctx := context.Background()
	findingService := service.NewFindingService()

	testCases := []struct {
		name     string
		raw      string
		validate func(t *testing.T, items []service.NormalizedFinding)
	}{
		{
			name: "Structured findings with scored sources",
			raw: `[{"descrizione": "Manca il manuale d'uso", "fonti": [
				{"riferimento": "Direttiva Macchine", "chunk": "Allegato I 1.7.4", "score": 0.82},
				{"reference": "EN ISO 12100", "similarity": "45"},
				{"documento": "Allegato II"}
			]}]`,
			validate: func(t *testing.T, items []service.NormalizedFinding) {
				require.Len(t, items, 1)
				item := items[0]
				assert.Equal(t, "Manca il manuale d'uso", item.Text)
				assert.Equal(t, findings.QuestionForFinding("Manca il manuale d'uso"), item.Question)
				require.Len(t, item.Sources, 3)

				assert.Equal(t, findings.TierHigh, item.Sources[0].Tier)
				assert.Equal(t, "Pertinenza: 82%", item.Sources[0].Badge)
				assert.Equal(t, "Allegato I 1.7.4", item.Sources[0].Excerpt)

				assert.Equal(t, findings.TierLow, item.Sources[1].Tier)
				require.NotNil(t, item.Sources[1].Percent)
				assert.InDelta(t, 45.0, *item.Sources[1].Percent, 0.001)

				assert.Equal(t, findings.TierUnknown, item.Sources[2].Tier)
				assert.Nil(t, item.Sources[2].Percent)
				assert.Equal(t, "Pertinenza: N/D", item.Sources[2].Badge)
			},
		},
		{
			name: "Bulleted text",
			raw:  `"- Protezioni assenti\n- Marcatura CE mancante"`,
			validate: func(t *testing.T, items []service.NormalizedFinding) {
				require.Len(t, items, 2)
				assert.Equal(t, "Protezioni assenti", items[0].Text)
				assert.Equal(t, "Marcatura CE mancante", items[1].Text)
				assert.Empty(t, items[0].Sources)
			},
		},
		{
			name: "Object without text gets a placeholder",
			raw:  `[{"fonti": []}]`,
			validate: func(t *testing.T, items []service.NormalizedFinding) {
				require.Len(t, items, 1)
				assert.Equal(t, "Segnalazione 1", items[0].Text)
			},
		},
		{
			name: "Null yields nothing",
			raw:  `null`,
			validate: func(t *testing.T, items []service.NormalizedFinding) {
				assert.Empty(t, items)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := findingService.Normalize(ctx, json.RawMessage(tc.raw))
			require.NoError(t, err)
			tc.validate(t, items)
		})
	}
}

func TestFindingService_Suggestions(t *testing.T) {
	ctx := context.Background()
	findingService := service.NewFindingService()

	suggestions, err := findingService.Suggestions(ctx,
		json.RawMessage(`[{"testo": "Arresto di emergenza non conforme"}]`),
		json.RawMessage(`["Aggiornare il fascicolo tecnico"]`),
	)
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)
	assert.LessOrEqual(t, len(suggestions), 4)

	var found bool
	for _, s := range suggestions {
		if s.Question == findings.QuestionForFinding("Arresto di emergenza non conforme") {
			found = true
		}
	}
	assert.True(t, found)
}
