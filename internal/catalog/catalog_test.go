// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/findthatbook/pkg/types"
)

func TestBuildQueries(t *testing.T) {
	tests := []struct {
		name   string
		intent types.SearchIntent
		want   []url.Values
	}{
		{
			name:   "title and author",
			intent: types.SearchIntent{Title: " The Hobbit ", Author: "Tolkien", OriginalQuery: "tolkien hobbit"},
			want: []url.Values{
				{"title": {"The Hobbit"}, "author": {"Tolkien"}},
				{"title": {"The Hobbit"}},
				{"author": {"Tolkien"}},
			},
		},
		{
			name:   "title and keywords",
			intent: types.SearchIntent{Title: "Dune", Keywords: []string{"illustrated", "first edition"}},
			want: []url.Values{
				{"title": {"Dune"}},
				{"q": {"illustrated first edition"}},
			},
		},
		{
			name:   "raw query fallback",
			intent: types.SearchIntent{Title: "  ", OriginalQuery: "old sea stories"},
			want:   []url.Values{{"q": {"old sea stories"}}},
		},
		{
			name:   "nothing to search",
			intent: types.SearchIntent{OriginalQuery: "   "},
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQueries(tt.intent))
		})
	}
}

func TestMerge(t *testing.T) {
	a := []types.Book{{Key: "1"}, {Key: "2"}}
	b := []types.Book{{Key: "2", Title: "dup"}, {Key: "3"}, {Key: "4"}}

	got := merge([][]types.Book{a, nil, b}, 3)
	assert.Equal(t, []types.Book{{Key: "1"}, {Key: "2"}, {Key: "3"}}, got)

	assert.Equal(t, []types.Book{}, merge(nil, 5))
}
