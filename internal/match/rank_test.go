// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/findthatbook/pkg/types"
)

func TestRankTruncates(t *testing.T) {
	var books []types.Book
	for i := 0; i < 10; i++ {
		books = append(books, types.Book{
			Key:     fmt.Sprintf("/works/OL%dW", i),
			Title:   "The Hobbit",
			Authors: []string{"J.R.R. Tolkien"},
		})
	}
	intent := types.SearchIntent{Title: "The Hobbit", Author: "J.R.R. Tolkien"}

	got := NewRanker(nil).Rank(books, intent, 3)
	assert.Len(t, got, 3)

	got = NewRanker(nil).Rank(books, intent, 0)
	assert.Len(t, got, DefaultMaxCandidates)
}

func TestRankExcludesNonMatches(t *testing.T) {
	books := []types.Book{
		{Key: "a", Title: "Dune", Authors: []string{"Frank Herbert"}},
		{Key: "b", Title: "The Hobbit", Authors: []string{"J.R.R. Tolkien"}},
	}
	got := NewRanker(nil).Rank(books, types.SearchIntent{Title: "The Hobbit"}, 5)

	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Book.Key)
}

func TestRankOrdersByStrengthThenScore(t *testing.T) {
	books := []types.Book{
		{Key: "partial", Title: "The Hobbit", Authors: []string{"Someone Else"}},
		{Key: "none", Title: "Unrelated"},
		{Key: "strong-lower", Title: "The Hobbit", Authors: []string{"J.R.R. Tolkien"}},
		{Key: "strong-higher", Title: "Hobbit", Authors: []string{"Tolkien"}},
	}
	intent := types.SearchIntent{Title: "The Hobbit", Author: "Tolkien"}

	got := NewRanker(nil).Rank(books, intent, 5)

	require.Len(t, got, 3)
	assert.Equal(t, "strong-higher", got[0].Book.Key)
	assert.Equal(t, types.MatchStrong, got[0].MatchStrength)
	assert.InDelta(t, 65.0, got[0].MatchScore, delta)

	assert.Equal(t, "strong-lower", got[1].Book.Key)
	assert.Equal(t, types.MatchStrong, got[1].MatchStrength)
	assert.InDelta(t, 64.5, got[1].MatchScore, delta)

	assert.Equal(t, "partial", got[2].Book.Key)
	assert.Equal(t, types.MatchPartial, got[2].MatchStrength)
	assert.InDelta(t, 40.0, got[2].MatchScore, delta)
}

func TestRankIsStableOnTies(t *testing.T) {
	var books []types.Book
	for i := 0; i < 6; i++ {
		books = append(books, types.Book{Key: fmt.Sprintf("k%d", i), Title: "Dune", Authors: []string{"Frank Herbert"}})
	}
	got := NewRanker(nil).Rank(books, types.SearchIntent{Title: "Dune", Author: "Frank Herbert"}, 10)

	require.Len(t, got, 6)
	for i, c := range got {
		assert.Equal(t, fmt.Sprintf("k%d", i), c.Book.Key)
	}
}

func TestRankEmptyInput(t *testing.T) {
	got := NewRanker(nil).Rank(nil, types.SearchIntent{Title: "Dune"}, 5)
	assert.Empty(t, got)
}

func TestCandidateExplanationFromRank(t *testing.T) {
	books := []types.Book{{Key: "k", Title: "The Adventures of Huckleberry Finn", Authors: []string{"Mark Twain"}}}
	got := NewRanker(nil).Rank(books, types.SearchIntent{Title: "the adventures of huckleberry finn", Author: "mark twain"}, 5)

	require.Len(t, got, 1)
	assert.Equal(t,
		`Exact match: Title exact match: "The Adventures of Huckleberry Finn"; Author exact match: "Mark Twain"`,
		got[0].Explanation())
}
