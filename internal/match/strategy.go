// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import "github.com/pdiddy/findthatbook/pkg/types"

// Strategy scores one record against an intent along a single signal.
// The registry calls Evaluate only when CanEvaluate returns true.
type Strategy interface {
	Name() string
	Weight() float64
	CanEvaluate(intent types.SearchIntent) bool
	Evaluate(book types.Book, intent types.SearchIntent) StrategyScore
}

// Strategy names, used as keys in Result.Scores.
const (
	NameTitle   = "Title"
	NameAuthor  = "Author"
	NameYear    = "Year"
	NameKeyword = "Keyword"
)

// Strategy weights. They must sum to 1.0.
const (
	WeightTitle   = 0.40
	WeightAuthor  = 0.35
	WeightYear    = 0.10
	WeightKeyword = 0.15
)

// Tier thresholds used by the strength evaluator.
const (
	ExactMatchThreshold          = 0.95
	StrongMatchThreshold         = 0.70
	HighTitleThreshold           = 0.85
	PartialMatchThreshold        = 0.60
	ModerateMatchThreshold       = 0.40
	WeakMatchThreshold           = 0.30
	YearConfirmationThreshold    = 0.80
	TitleWordMatchRatioThreshold = 0.50
)

// Title scores.
const (
	titleExactScore           = 1.0
	titleContainsScore        = 0.85
	titleContainedScore       = 0.75
	titleWordMatchBase        = 0.50
	titleWordMatchMultiplier  = 0.30
	titleLowWordMatchMultiple = 0.40
)

// Author scores.
const (
	authorExactScore             = 1.0
	authorLastNameOnlyScore      = 0.70
	authorLastNameWithFirstScore = 0.90
	authorPartialBase            = 0.50
	authorPartialMultiplier      = 0.30
	authorPartialRatioThreshold  = 0.50
	authorMinPartLength          = 2
)

// Year scores.
const (
	yearExactScore       = 1.0
	yearCloseScore       = 0.80
	yearApproximateScore = 0.50
	yearCloseRange       = 2
	yearApproximateRange = 5
)

// DefaultStrategies returns the four strategies in registration order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		TitleStrategy{},
		AuthorStrategy{},
		YearStrategy{},
		KeywordStrategy{},
	}
}
