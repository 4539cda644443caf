// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"math"

	"github.com/pdiddy/findthatbook/pkg/types"
)

// StrategyScore is one strategy's verdict on one record.
type StrategyScore struct {
	// Score is in [0,1].
	Score float64 `json:"score" yaml:"score"`

	// Weight is the strategy's fixed weight.
	Weight float64 `json:"weight" yaml:"weight"`

	// Reason explains a non-zero score; empty for NoMatch.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// NoMatch returns a zero score carrying the strategy weight.
func NoMatch(weight float64) StrategyScore {
	return StrategyScore{Weight: weight}
}

// NewScore builds a score clamped to [0,1].
func NewScore(score, weight float64, reason string) StrategyScore {
	return StrategyScore{Score: clamp01(score), Weight: weight, Reason: reason}
}

// WeightedScore is the contribution to the total on a 0-100 scale.
func (s StrategyScore) WeightedScore() float64 {
	return s.Score * s.Weight * 100
}

// HasMatch reports whether the strategy found anything.
func (s StrategyScore) HasMatch() bool {
	return s.Score > 0
}

// Result aggregates every strategy's score for one record.
type Result struct {
	// Scores is keyed by strategy name.
	Scores map[string]StrategyScore `json:"scores" yaml:"scores"`

	// TotalScore is the weighted sum rounded to 2 decimals.
	TotalScore float64 `json:"total_score" yaml:"total_score"`

	Strength types.MatchStrength `json:"strength" yaml:"strength"`

	// Reasons holds the reasons of matching strategies in execution order.
	Reasons []string `json:"reasons" yaml:"reasons"`
}

// Score returns the named strategy's score and whether it was recorded.
func (r Result) Score(name string) (StrategyScore, bool) {
	s, ok := r.Scores[name]
	return s, ok
}

// clamp01 bounds v to [0,1]. NaN maps to 0.
func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
