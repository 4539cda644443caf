// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"fmt"

	"github.com/pdiddy/findthatbook/pkg/types"
)

// YearStrategy compares the intent year with the first publish year.
type YearStrategy struct{}

func (YearStrategy) Name() string    { return NameYear }
func (YearStrategy) Weight() float64 { return WeightYear }

// CanEvaluate requires an intent year.
func (YearStrategy) CanEvaluate(intent types.SearchIntent) bool {
	return intent.HasYear()
}

// Evaluate scores by distance: exact, within 2 years, within 5 years.
func (YearStrategy) Evaluate(book types.Book, intent types.SearchIntent) StrategyScore {
	if book.FirstPublishYear == nil || intent.Year == nil {
		return NoMatch(WeightYear)
	}
	bookYear, searchYear := *book.FirstPublishYear, *intent.Year

	diff := bookYear - searchYear
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff == 0:
		return NewScore(yearExactScore, WeightYear, fmt.Sprintf("Year exact match: %d", bookYear))
	case diff <= yearCloseRange:
		return NewScore(yearCloseScore, WeightYear,
			fmt.Sprintf("Year close match: %d (searched: %d)", bookYear, searchYear))
	case diff <= yearApproximateRange:
		return NewScore(yearApproximateScore, WeightYear, fmt.Sprintf("Year approximate match: %d", bookYear))
	default:
		return NoMatch(WeightYear)
	}
}
