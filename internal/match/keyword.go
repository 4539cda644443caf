// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"strings"

	"github.com/pdiddy/findthatbook/pkg/types"
)

// KeywordStrategy looks for intent keywords anywhere in the record's
// title, authors and subjects.
type KeywordStrategy struct{}

func (KeywordStrategy) Name() string    { return NameKeyword }
func (KeywordStrategy) Weight() float64 { return WeightKeyword }

// CanEvaluate requires at least one non-blank keyword.
func (KeywordStrategy) CanEvaluate(intent types.SearchIntent) bool {
	return intent.HasKeywords()
}

// Evaluate scores the share of keywords found as substrings. Blank
// keywords are ignored and do not count towards the total.
func (KeywordStrategy) Evaluate(book types.Book, intent types.SearchIntent) StrategyScore {
	haystack := Normalize(book.Title + " " + strings.Join(book.Authors, " ") + " " + strings.Join(book.Subjects, " "))

	var matched []string
	total := 0
	for _, kw := range intent.Keywords {
		needle := Normalize(kw)
		if needle == "" {
			continue
		}
		total++
		if strings.Contains(haystack, needle) {
			matched = append(matched, kw)
		}
	}

	if len(matched) == 0 {
		return NoMatch(WeightKeyword)
	}
	ratio := float64(len(matched)) / float64(total)
	return NewScore(ratio, WeightKeyword, "Keywords matched: "+strings.Join(matched, ", "))
}
