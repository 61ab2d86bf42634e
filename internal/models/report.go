package models

import "math"

// Status classifies one compared field.
type Status string

const (
	StatusMatch        Status = "match"
	StatusDifferent    Status = "different"
	StatusMissingLeft  Status = "missing_left"
	StatusMissingRight Status = "missing_right"
)

// FieldComparison is the per-path outcome of comparing two documents.
// Left and Right hold the rendered scalar for each side and are nil when
// the side does not contain the path.
type FieldComparison struct {
	Path   string  `json:"path"`
	Left   *string `json:"left"`
	Right  *string `json:"right"`
	Status Status  `json:"status"`
}

// Stats aggregates a report. Differing counts fields that are different
// on both sides as well as fields missing from one side, so
// Matching+Differing always equals Total. Percentages are rounded to one
// decimal place and are 0 when Total is 0.
type Stats struct {
	Total         int     `json:"total"`
	Matching      int     `json:"matching"`
	Differing     int     `json:"differing"`
	MatchPercent  float64 `json:"match_percent"`
	DifferPercent float64 `json:"differ_percent"`
}

// ComparisonReport is the terminal artifact of a comparison: one
// FieldComparison per distinct path across both documents, in first-seen
// order (left document first), plus aggregate statistics.
type ComparisonReport struct {
	Fields []FieldComparison `json:"fields"`
	Stats  Stats             `json:"stats"`
}

// NewStats computes aggregates for a matching count out of total.
func NewStats(total, matching int) Stats {
	s := Stats{
		Total:     total,
		Matching:  matching,
		Differing: total - matching,
	}
	if total > 0 {
		s.MatchPercent = roundPercent(float64(matching) / float64(total) * 100)
		s.DifferPercent = roundPercent(float64(s.Differing) / float64(total) * 100)
	}
	return s
}

func roundPercent(p float64) float64 {
	return math.Round(p*10) / 10
}
