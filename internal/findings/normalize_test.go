package findings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliance-ai/backend/internal/findings"
	"compliance-ai/backend/internal/model"
)

func TestNormalize(t *testing.T) {
	t.Run("Text unit", func(t *testing.T) {
		f := findings.Normalize(findings.TextUnit("Ripari assenti"))
		assert.Equal(t, "Ripari assenti", f.Text)
		assert.Empty(t, f.Sources)
	})

	t.Run("Text synonyms in order", func(t *testing.T) {
		f := findings.Normalize(findings.StructuredUnit{
			"text":        "secondo",
			"descrizione": "terzo",
			"testo":       "",
		})
		assert.Equal(t, "secondo", f.Text)

		f = findings.Normalize(findings.StructuredUnit{"messaggio": "quarto"})
		assert.Equal(t, "quarto", f.Text)

		f = findings.Normalize(findings.StructuredUnit{"altro": "x"})
		assert.Equal(t, "", f.Text)
	})

	t.Run("Scalar sources become a list and falsy entries are dropped", func(t *testing.T) {
		f := findings.Normalize(findings.StructuredUnit{
			"testo": "a",
			"fonte": "Allegato I, 1.3.8",
		})
		require.Len(t, f.Sources, 1)
		assert.Equal(t, "Allegato I, 1.3.8", f.Sources[0].Reference)
		assert.Equal(t, findings.Placeholder, f.Sources[0].Excerpt)

		f = findings.Normalize(findings.StructuredUnit{
			"testo":   "b",
			"sources": []any{nil, "", map[string]any{"ref": "Art. 12"}, false},
		})
		require.Len(t, f.Sources, 1)
		assert.Equal(t, "Art. 12", f.Sources[0].Reference)
	})

	t.Run("Empty source list still wins over later synonyms", func(t *testing.T) {
		f := findings.Normalize(findings.StructuredUnit{
			"fonti":   []any{},
			"sources": []any{"ignored"},
		})
		assert.Empty(t, f.Sources)
	})

	t.Run("Scalar unit is stringified", func(t *testing.T) {
		assert.Equal(t, "12.5", findings.Normalize(findings.ScalarUnit{Value: 12.5}).Text)
		assert.Equal(t, "true", findings.Normalize(findings.ScalarUnit{Value: true}).Text)
		assert.Equal(t, "", findings.Normalize(findings.ScalarUnit{Value: nil}).Text)
	})
}

func TestNormalizeAll(t *testing.T) {
	units := findings.Parse([]any{"primo", "   ", map[string]any{"testo": ""}, "quarto"})

	result := findings.NormalizeAll(units)

	require.Len(t, result, 4)
	assert.Equal(t, "primo", result[0].Text)
	assert.Equal(t, "Segnalazione 2", result[1].Text)
	assert.Equal(t, "Segnalazione 3", result[2].Text)
	assert.Equal(t, "quarto", result[3].Text)
}

func TestNormalizeSource(t *testing.T) {
	t.Run("Synonyms and raw confidence", func(t *testing.T) {
		src := findings.NormalizeSource(map[string]any{
			"citation":   "Reg. UE 2023/1230, Art. 12",
			"estratto":   "Il fabbricante garantisce...",
			"confidence": nil,
			"score":      0.82,
		})
		assert.Equal(t, "Reg. UE 2023/1230, Art. 12", src.Reference)
		assert.Equal(t, "Il fabbricante garantisce...", src.Excerpt)
		require.NotNil(t, src.Confidence)
		assert.InDelta(t, 0.82, *src.Confidence, 1e-9)
	})

	t.Run("Zero confidence is kept", func(t *testing.T) {
		src := findings.NormalizeSource(map[string]any{"similarity": float64(0), "pertinenza": 90.0})
		require.NotNil(t, src.Confidence)
		assert.Equal(t, 0.0, *src.Confidence)
	})

	t.Run("Defaults", func(t *testing.T) {
		src := findings.NormalizeSource(map[string]any{})
		assert.Equal(t, model.Source{Reference: findings.Placeholder, Excerpt: findings.Placeholder}, src)
	})

	t.Run("Non-object", func(t *testing.T) {
		src := findings.NormalizeSource(float64(7))
		assert.Equal(t, "7", src.Reference)
		assert.Equal(t, findings.Placeholder, src.Excerpt)
		assert.Nil(t, src.Confidence)
	})
}
