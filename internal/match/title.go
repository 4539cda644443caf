// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"fmt"
	"strings"

	"github.com/pdiddy/findthatbook/pkg/types"
)

// TitleStrategy compares the intent title with the record title.
type TitleStrategy struct{}

func (TitleStrategy) Name() string    { return NameTitle }
func (TitleStrategy) Weight() float64 { return WeightTitle }

// CanEvaluate requires a non-blank intent title.
func (TitleStrategy) CanEvaluate(intent types.SearchIntent) bool {
	return intent.HasTitle()
}

// Evaluate tries, in order: exact normalized equality, record title
// containing the search title, search title containing the record title,
// and finally word overlap.
func (s TitleStrategy) Evaluate(book types.Book, intent types.SearchIntent) StrategyScore {
	bookTitle := Normalize(book.Title)
	searchTitle := Normalize(intent.Title)
	if bookTitle == "" || searchTitle == "" {
		return NoMatch(WeightTitle)
	}

	switch {
	case bookTitle == searchTitle:
		return NewScore(titleExactScore, WeightTitle,
			fmt.Sprintf("Title exact match: %q", book.Title))
	case strings.Contains(bookTitle, searchTitle):
		return NewScore(titleContainsScore, WeightTitle,
			fmt.Sprintf("Title contains search term: %q", intent.Title))
	case strings.Contains(searchTitle, bookTitle):
		return NewScore(titleContainedScore, WeightTitle,
			fmt.Sprintf("Search term contains title: %q", book.Title))
	}

	return wordMatch(strings.Fields(searchTitle), strings.Fields(bookTitle))
}

// wordMatch scores the share of search words overlapping some title word.
func wordMatch(searchWords, titleWords []string) StrategyScore {
	matched := countOverlapping(searchWords, titleWords)
	if matched == 0 {
		return NoMatch(WeightTitle)
	}

	total := len(searchWords)
	ratio := float64(matched) / float64(total)
	if ratio >= TitleWordMatchRatioThreshold {
		return NewScore(titleWordMatchBase+ratio*titleWordMatchMultiplier, WeightTitle,
			fmt.Sprintf("Title word match: %d/%d words matched", matched, total))
	}
	return NewScore(ratio*titleLowWordMatchMultiple, WeightTitle,
		fmt.Sprintf("Title partial word match: %d/%d words", matched, total))
}
