package findings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"compliance-ai/backend/internal/model"
)

// Placeholder is shown for any text or citation field that is missing.
const Placeholder = "—"

// Synonymous field names, in lookup order.
var (
	textFields       = []string{"testo", "text", "descrizione", "messaggio"}
	sourceFields     = []string{"fonti", "sources", "fonte"}
	referenceFields  = []string{"riferimento", "reference", "citazione", "citation", "ref", "documentReference", "documento"}
	excerptFields    = []string{"chunk", "estratto", "excerpt", "testo", "text"}
	confidenceFields = []string{"confidence", "score", "similarity", "pertinenza"}
)

// Normalize converts one unit into a Finding. The text is taken verbatim and
// may be empty; use NormalizeAll for display-ready findings.
func Normalize(unit Unit) model.Finding {
	switch u := unit.(type) {
	case TextUnit:
		return model.Finding{Text: string(u), Sources: []model.Source{}}
	case StructuredUnit:
		return model.Finding{
			Text:    stringify(firstTruthy(u, textFields)),
			Sources: normalizeSources(firstTruthy(u, sourceFields)),
		}
	case ScalarUnit:
		return model.Finding{Text: stringify(u.Value), Sources: []model.Source{}}
	default:
		return model.Finding{Sources: []model.Source{}}
	}
}

// NormalizeAll normalizes every unit and replaces blank texts with a
// numbered "Segnalazione N" placeholder (1-based).
func NormalizeAll(units []Unit) []model.Finding {
	out := make([]model.Finding, len(units))
	for i, unit := range units {
		f := Normalize(unit)
		if strings.TrimSpace(f.Text) == "" {
			f.Text = fmt.Sprintf("Segnalazione %d", i+1)
		}
		out[i] = f
	}
	return out
}

// NormalizeSource converts one raw citation. Non-object citations keep their
// textual value as the reference.
func NormalizeSource(raw any) model.Source {
	obj, ok := raw.(map[string]any)
	if !ok {
		ref := stringify(raw)
		if ref == "" {
			ref = Placeholder
		}
		return model.Source{Reference: ref, Excerpt: Placeholder}
	}

	src := model.Source{
		Reference: Placeholder,
		Excerpt:   Placeholder,
	}
	if v := firstTruthy(obj, referenceFields); v != nil {
		src.Reference = stringify(v)
	}
	if v := firstTruthy(obj, excerptFields); v != nil {
		src.Excerpt = stringify(v)
	}
	for _, field := range confidenceFields {
		if v, present := obj[field]; present && v != nil {
			src.Confidence = toNumber(v)
			break
		}
	}
	return src
}

func normalizeSources(raw any) []model.Source {
	if raw == nil {
		return []model.Source{}
	}
	items, ok := raw.([]any)
	if !ok {
		items = []any{raw}
	}
	out := make([]model.Source, 0, len(items))
	for _, item := range items {
		if isFalsy(item) {
			continue
		}
		out = append(out, NormalizeSource(item))
	}
	return out
}

func firstTruthy(obj map[string]any, fields []string) any {
	for _, field := range fields {
		if v, ok := obj[field]; ok && !isFalsy(v) {
			return v
		}
	}
	return nil
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	}
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprint(v)
}
