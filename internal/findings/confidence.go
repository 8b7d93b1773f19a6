package findings

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tier is the qualitative bucket of a confidence percentage.
type Tier string

const (
	TierUnknown Tier = "unknown"
	TierLow     Tier = "low"
	TierMedium  Tier = "medium"
	TierHigh    Tier = "high"
)

// NormalizePercent maps a raw confidence to a percentage in [0, 100].
//
// Values above 1 are read as percentages and clamped; values up to 1 are read
// as fractions. A genuine percentage below 1 is therefore indistinguishable
// from a fraction and is scaled up. Absent or non-numeric input yields nil.
func NormalizePercent(raw any) *float64 {
	num := toNumber(raw)
	if num == nil {
		return nil
	}
	var pct float64
	if *num > 1 {
		pct = math.Max(0, math.Min(100, *num))
	} else {
		pct = math.Max(0, math.Min(1, *num)) * 100
	}
	return &pct
}

// Classify buckets a percentage produced by NormalizePercent.
func Classify(percent *float64) Tier {
	switch {
	case percent == nil:
		return TierUnknown
	case *percent >= 80:
		return TierHigh
	case *percent >= 50:
		return TierMedium
	default:
		return TierLow
	}
}

// Badge renders the relevance label shown next to a citation.
func Badge(raw any) string {
	pct := NormalizePercent(raw)
	if pct == nil {
		return "Pertinenza: N/D"
	}
	return fmt.Sprintf("Pertinenza: %d%%", int(math.Round(*pct)))
}

func toNumber(raw any) *float64 {
	var f float64
	switch v := raw.(type) {
	case nil:
		return nil
	case *float64:
		if v == nil {
			return nil
		}
		f = *v
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
