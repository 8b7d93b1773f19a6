// Package findings turns the loosely-typed non-conformity and recommendation
// payloads of an assessment into normalized findings, classifies source
// confidence and derives the quick questions offered to the user.
package findings

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
)

// Unit is one raw finding as it appeared in the payload, before normalization.
// It is one of TextUnit, StructuredUnit or ScalarUnit.
type Unit interface {
	isUnit()
}

// TextUnit is a finding given as plain text.
type TextUnit string

// StructuredUnit is a finding given as an object with synonymous field names.
type StructuredUnit map[string]any

// ScalarUnit wraps any other value (numbers, booleans, nested arrays, null).
type ScalarUnit struct {
	Value any
}

func (TextUnit) isUnit()       {}
func (StructuredUnit) isUnit() {}
func (ScalarUnit) isUnit()     {}

var (
	lineBreak    = regexp.MustCompile(`\r?\n`)
	bulletPrefix = regexp.MustCompile(`^[-*•]\s+`)
	numberPrefix = regexp.MustCompile(`^\d+[.)]\s+`)
)

// Parse splits a findings payload into units.
//
// Absent or falsy payloads yield an empty slice. A slice is returned element by
// element. Any other non-string value becomes a single unit. A string is first
// tried as a JSON array; any other string (including a JSON object) is split
// into lines with bullet and numbered-list prefixes removed.
func Parse(raw any) []Unit {
	if isFalsy(raw) {
		return []Unit{}
	}

	switch v := raw.(type) {
	case []Unit:
		return v
	case []any:
		return fromSlice(v)
	case []string:
		units := make([]Unit, len(v))
		for i, s := range v {
			units[i] = TextUnit(s)
		}
		return units
	case []map[string]any:
		units := make([]Unit, len(v))
		for i, m := range v {
			units[i] = StructuredUnit(m)
		}
		return units
	case string:
		return parseString(v)
	case json.RawMessage:
		return ParseJSON(v)
	default:
		return []Unit{toUnit(raw)}
	}
}

// ParseJSON decodes a JSON payload and parses the decoded value. Bytes that are
// not valid JSON are treated as a plain text payload.
func ParseJSON(data []byte) []Unit {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return Parse(string(data))
	}
	return Parse(decoded)
}

func parseString(s string) []Unit {
	text := strings.TrimSpace(s)
	if text == "" {
		return []Unit{}
	}

	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err == nil {
		if items, ok := decoded.([]any); ok {
			return fromSlice(items)
		}
	}

	units := []Unit{}
	for _, line := range lineBreak.Split(text, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = bulletPrefix.ReplaceAllString(line, "")
		line = numberPrefix.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		units = append(units, TextUnit(line))
	}
	return units
}

func fromSlice(items []any) []Unit {
	units := make([]Unit, len(items))
	for i, item := range items {
		units[i] = toUnit(item)
	}
	return units
}

func toUnit(v any) Unit {
	switch x := v.(type) {
	case Unit:
		return x
	case string:
		return TextUnit(x)
	case map[string]any:
		return StructuredUnit(x)
	default:
		return ScalarUnit{Value: v}
	}
}

// isFalsy mirrors the loose truthiness the payloads were produced with:
// nil, empty string, false, zero and NaN carry no content.
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case float64:
		return x == 0 || math.IsNaN(x)
	case float32:
		return x == 0 || math.IsNaN(float64(x))
	case int:
		return x == 0
	case int64:
		return x == 0
	case int32:
		return x == 0
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	}
	return false
}
