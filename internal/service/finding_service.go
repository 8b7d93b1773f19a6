package service

import (
	"context"
	"encoding/json"

	"compliance-ai/backend/internal/findings"
	"compliance-ai/backend/internal/model"
)

// ScoredSource is a source with its confidence expressed as a percentage.
type ScoredSource struct {
	model.Source
	Percent *float64      `json:"percent,omitempty"`
	Tier    findings.Tier `json:"tier"`
	Badge   string        `json:"badge"`
}

// NormalizedFinding is a finding ready to be displayed.
type NormalizedFinding struct {
	Text     string         `json:"text"`
	Sources  []ScoredSource `json:"sources"`
	Question string         `json:"question"`
}

// FindingService turns the loosely shaped findings produced by an assessment
// into display-ready items and chat suggestions.
type FindingService struct{}

// NewFindingService creates a new FindingService.
func NewFindingService() *FindingService {
	return &FindingService{}
}

// Normalize parses raw, which may be a JSON list, a JSON object, a JSON
// string or any other JSON value, and normalizes every item it contains.
func (s *FindingService) Normalize(_ context.Context, raw json.RawMessage) ([]NormalizedFinding, error) {
	normalized := findings.NormalizeAll(findings.ParseJSON(raw))
	out := make([]NormalizedFinding, 0, len(normalized))
	for _, f := range normalized {
		item := NormalizedFinding{
			Text:     f.Text,
			Sources:  make([]ScoredSource, 0, len(f.Sources)),
			Question: findings.QuestionForFinding(f.Text),
		}
		for _, src := range f.Sources {
			item.Sources = append(item.Sources, scoreSource(src))
		}
		out = append(out, item)
	}
	return out, nil
}

// Suggestions builds the quick questions offered in an assessment chat.
func (s *FindingService) Suggestions(_ context.Context, findingsRaw, recommendationsRaw json.RawMessage) ([]model.Suggestion, error) {
	return findings.BuildSuggestions(findings.ParseJSON(findingsRaw), findings.ParseJSON(recommendationsRaw)), nil
}

func scoreSource(src model.Source) ScoredSource {
	var raw any
	if src.Confidence != nil {
		raw = *src.Confidence
	}
	percent := findings.NormalizePercent(raw)
	return ScoredSource{
		Source:  src,
		Percent: percent,
		Tier:    findings.Classify(percent),
		Badge:   findings.Badge(raw),
	}
}
