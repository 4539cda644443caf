// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"fmt"
	"strings"

	"github.com/pdiddy/findthatbook/pkg/types"
)

// AuthorStrategy compares the intent author with the record's authors.
//
// Authors are tried in record order and the first one that matches at all
// decides the score, even if a later author would score higher.
type AuthorStrategy struct{}

func (AuthorStrategy) Name() string    { return NameAuthor }
func (AuthorStrategy) Weight() float64 { return WeightAuthor }

// CanEvaluate requires a non-blank intent author.
func (AuthorStrategy) CanEvaluate(intent types.SearchIntent) bool {
	return intent.HasAuthor()
}

// Evaluate returns the score of the first matching record author.
func (AuthorStrategy) Evaluate(book types.Book, intent types.SearchIntent) StrategyScore {
	if len(book.Authors) == 0 {
		return NoMatch(WeightAuthor)
	}
	search := Normalize(intent.Author)
	searchParts := strings.Fields(search)
	if len(searchParts) == 0 {
		return NoMatch(WeightAuthor)
	}

	for _, author := range book.Authors {
		if score := scoreAuthor(author, search, searchParts); score.HasMatch() {
			return score
		}
	}
	return NoMatch(WeightAuthor)
}

func scoreAuthor(author, search string, searchParts []string) StrategyScore {
	normalized := Normalize(author)
	authorParts := strings.Fields(normalized)
	if len(authorParts) == 0 {
		return NoMatch(WeightAuthor)
	}

	if normalized == search {
		return NewScore(authorExactScore, WeightAuthor,
			fmt.Sprintf("Author exact match: %q", author))
	}

	singleToken := len(searchParts) == 1
	if lastNameMatch(authorParts, searchParts) && (singleToken || firstNameMatch(authorParts, searchParts)) {
		score := authorLastNameWithFirstScore
		if singleToken {
			score = authorLastNameOnlyScore
		}
		return NewScore(score, WeightAuthor, fmt.Sprintf("Author match: %q", author))
	}

	matched := countOverlapping(searchParts, authorParts)
	if matched > 0 {
		ratio := float64(matched) / float64(len(searchParts))
		if ratio >= authorPartialRatioThreshold {
			return NewScore(authorPartialBase+ratio*authorPartialMultiplier, WeightAuthor,
				fmt.Sprintf("Author partial match: %q", author))
		}
	}
	return NoMatch(WeightAuthor)
}

// lastNameMatch reports whether some author token longer than the minimum
// part length equals some search token.
func lastNameMatch(authorParts, searchParts []string) bool {
	for _, ap := range authorParts {
		if len(ap) <= authorMinPartLength {
			continue
		}
		for _, sp := range searchParts {
			if ap == sp {
				return true
			}
		}
	}
	return false
}

// firstNameMatch reports whether a non-final author token is a prefix of,
// or prefixed by, some search token. Initials like "j" agree with "john".
func firstNameMatch(authorParts, searchParts []string) bool {
	last := authorParts[len(authorParts)-1]
	for _, ap := range authorParts {
		if ap == last {
			continue
		}
		for _, sp := range searchParts {
			if strings.HasPrefix(ap, sp) || strings.HasPrefix(sp, ap) {
				return true
			}
		}
	}
	return false
}
