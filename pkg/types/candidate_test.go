// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestMatchStrengthOrdering(t *testing.T) {
	assert.Less(t, MatchNone, MatchWeak)
	assert.Less(t, MatchWeak, MatchPartial)
	assert.Less(t, MatchPartial, MatchStrong)
	assert.Less(t, MatchStrong, MatchExact)
	assert.Equal(t, 4, int(MatchExact))
}

func TestMatchStrengthString(t *testing.T) {
	tests := []struct {
		s    MatchStrength
		want string
	}{
		{MatchNone, "None"},
		{MatchWeak, "Weak"},
		{MatchPartial, "Partial"},
		{MatchStrong, "Strong"},
		{MatchExact, "Exact"},
		{MatchStrength(9), "MatchStrength(9)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.String())
	}
}

func TestParseMatchStrength(t *testing.T) {
	s, err := ParseMatchStrength(" strong ")
	require.NoError(t, err)
	assert.Equal(t, MatchStrong, s)

	_, err = ParseMatchStrength("great")
	assert.Error(t, err)
}

func TestMatchStrengthTextEncoding(t *testing.T) {
	c := Candidate{Book: Book{Key: "/works/OL1W"}, MatchStrength: MatchPartial, MatchScore: 42.5}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"match_strength":"Partial"`)

	var back Candidate
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, MatchPartial, back.MatchStrength)

	y, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(y), "match_strength: Partial")

	var fromYAML Candidate
	require.NoError(t, yaml.Unmarshal(y, &fromYAML))
	assert.Equal(t, MatchPartial, fromYAML.MatchStrength)
}

func TestCandidateExplanation(t *testing.T) {
	tests := []struct {
		name string
		c    Candidate
		want string
	}{
		{"exact", Candidate{MatchStrength: MatchExact, MatchReasons: []string{"r1", "r2"}}, "Exact match: r1; r2"},
		{"weak single", Candidate{MatchStrength: MatchWeak, MatchReasons: []string{"k"}}, "Weak match: k"},
		{"none", Candidate{MatchStrength: MatchNone, MatchReasons: []string{"ignored"}}, "No significant match found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Explanation())
		})
	}
}

func TestBookURLs(t *testing.T) {
	b := Book{Key: "/works/OL27448W", CoverID: "8406786"}
	assert.Equal(t, "https://covers.openlibrary.org/b/id/8406786-M.jpg", b.CoverURL())
	assert.Equal(t, "https://openlibrary.org/works/OL27448W", b.OpenLibraryURL())
	assert.Empty(t, Book{}.CoverURL())
}

func TestSearchIntentPredicates(t *testing.T) {
	tests := []struct {
		name                        string
		intent                      SearchIntent
		title, author, keywords, ye bool
	}{
		{"empty", SearchIntent{}, false, false, false, false},
		{"whitespace only", SearchIntent{Title: "  ", Author: "\t", Keywords: []string{" "}}, false, false, false, false},
		{"all", SearchIntent{Title: "Dune", Author: "Herbert", Keywords: []string{"sci-fi"}, Year: Year(1965)}, true, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.title, tt.intent.HasTitle())
			assert.Equal(t, tt.author, tt.intent.HasAuthor())
			assert.Equal(t, tt.keywords, tt.intent.HasKeywords())
			assert.Equal(t, tt.ye, tt.intent.HasYear())
		})
	}
	assert.True(t, SearchIntent{}.IsEmpty())
	assert.False(t, SearchIntent{OriginalQuery: "hobbit"}.IsEmpty())
}
