// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"sort"

	"github.com/pdiddy/findthatbook/pkg/types"
)

// DefaultMaxCandidates is used when Rank is called with a non-positive limit.
const DefaultMaxCandidates = 5

// Ranker turns catalog records into a bounded, ordered candidate list.
type Ranker struct {
	registry *Registry
}

// NewRanker returns a ranker backed by registry, or by the default
// registry when registry is nil.
func NewRanker(registry *Registry) *Ranker {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Ranker{registry: registry}
}

// Rank scores every book, drops those with no match, sorts by strength
// then score (both descending, stable on ties) and keeps the first
// maxCandidates.
func (r *Ranker) Rank(books []types.Book, intent types.SearchIntent, maxCandidates int) []types.Candidate {
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}

	candidates := make([]types.Candidate, 0, len(books))
	for _, b := range books {
		c := r.Candidate(b, intent)
		if c.MatchStrength == types.MatchNone {
			continue
		}
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].MatchStrength != candidates[j].MatchStrength {
			return candidates[i].MatchStrength > candidates[j].MatchStrength
		}
		return candidates[i].MatchScore > candidates[j].MatchScore
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}

// Candidate evaluates a single book without filtering.
func (r *Ranker) Candidate(book types.Book, intent types.SearchIntent) types.Candidate {
	res := r.registry.Evaluate(book, intent)
	return types.Candidate{
		Book:          book,
		MatchStrength: res.Strength,
		MatchScore:    res.TotalScore,
		MatchReasons:  res.Reasons,
	}
}
