// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import "github.com/pdiddy/findthatbook/pkg/types"

// Evaluator maps per-strategy scores to a match tier.
type Evaluator interface {
	Evaluate(scores map[string]StrategyScore) types.MatchStrength
}

// ThresholdEvaluator applies the tier rule chain; the first rule that
// holds wins. Missing strategies count as 0.
type ThresholdEvaluator struct{}

// Evaluate returns the tier for the given scores.
func (ThresholdEvaluator) Evaluate(scores map[string]StrategyScore) types.MatchStrength {
	title := scores[NameTitle].Score
	author := scores[NameAuthor].Score
	year := scores[NameYear].Score
	keyword := scores[NameKeyword].Score

	switch {
	case title >= ExactMatchThreshold && author >= ExactMatchThreshold:
		return types.MatchExact
	case title >= StrongMatchThreshold && author >= StrongMatchThreshold:
		return types.MatchStrong
	case title >= HighTitleThreshold && author >= TitleWordMatchRatioThreshold:
		return types.MatchStrong
	case title >= PartialMatchThreshold || author >= PartialMatchThreshold:
		return types.MatchPartial
	case (title >= ModerateMatchThreshold || author >= ModerateMatchThreshold) && year >= YearConfirmationThreshold:
		return types.MatchPartial
	case keyword >= WeakMatchThreshold || title >= WeakMatchThreshold || author >= WeakMatchThreshold:
		return types.MatchWeak
	default:
		return types.MatchNone
	}
}
