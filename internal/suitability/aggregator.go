package suitability

import (
	"fmt"

	"cropsense/domain/agronomy"
)

// Suitability labels assigned from the match score.
const (
	LabelOptimal = "optimal"
	LabelGood    = "good"
	LabelPoor    = "poor"

	// LabelUndefined marks the degenerate case where the crop defines no
	// ideal ranges at all, distinct from a computed low score.
	LabelUndefined = "undefined"
)

// Thresholds holds the score cutoffs for suitability labels. Scores at or
// above Optimal are "optimal", at or above Good are "good", anything lower
// is "poor".
type Thresholds struct {
	Optimal float64 `json:"optimal"`
	Good    float64 `json:"good"`
}

// DefaultThresholds returns the product-standard cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Optimal: 0.8,
		Good:    0.6,
	}
}

// Validate checks that the cutoffs are ordered and within [0, 1].
func (t Thresholds) Validate() error {
	if t.Good < 0 || t.Good > 1 {
		return fmt.Errorf("good threshold %v outside [0, 1]", t.Good)
	}
	if t.Optimal < 0 || t.Optimal > 1 {
		return fmt.Errorf("optimal threshold %v outside [0, 1]", t.Optimal)
	}
	if t.Good > t.Optimal {
		return fmt.Errorf("good threshold %v exceeds optimal threshold %v", t.Good, t.Optimal)
	}
	return nil
}

// Label maps a score in [0, 1] to its categorical label.
func (t Thresholds) Label(score float64) string {
	switch {
	case score >= t.Optimal:
		return LabelOptimal
	case score >= t.Good:
		return LabelGood
	default:
		return LabelPoor
	}
}

// Undefined is the result for crops with no defined ranges (or crops
// absent from the knowledge base).
func Undefined() agronomy.SuitabilityResult {
	return agronomy.SuitabilityResult{Label: LabelUndefined}
}

// Aggregate scores an observation against a crop's ideal conditions: the
// fraction of defined-range parameters the observation falls within.
// Parameters the crop defines no range for are skipped and do not count
// toward the total.
func Aggregate(obs agronomy.ObservationRecord, ideal agronomy.IdealConditions, thresholds Thresholds) agronomy.SuitabilityResult {
	matched := 0
	total := 0

	for _, param := range agronomy.FeatureOrder {
		verdict := agronomy.Evaluate(param, obs[param], ideal)
		if verdict.Status == agronomy.StatusUnknown {
			continue
		}
		total++
		if verdict.Status == agronomy.StatusWithin {
			matched++
		}
	}

	if total == 0 {
		return Undefined()
	}

	score := float64(matched) / float64(total)
	return agronomy.SuitabilityResult{
		Score:        score,
		MatchedCount: matched,
		TotalCount:   total,
		Label:        thresholds.Label(score),
	}
}
