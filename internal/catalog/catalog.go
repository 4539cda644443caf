// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog retrieves candidate book records from a remote catalog.
package catalog

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/pdiddy/findthatbook/pkg/types"
)

// ErrSearch reports that the catalog could not be queried.
var ErrSearch = errors.New("book search failed")

// DefaultMaxResults is the fan-out used when Search is called with a
// non-positive maxResults.
const DefaultMaxResults = 20

// Searcher returns catalog records that may match an intent.
type Searcher interface {
	Search(ctx context.Context, intent types.SearchIntent, maxResults int) ([]types.Book, error)
}

// BuildQueries returns the query variants tried for intent, most specific
// first: title and author, title, author, keywords, and the raw query when
// nothing else applies.
func BuildQueries(intent types.SearchIntent) []url.Values {
	var queries []url.Values
	title := strings.TrimSpace(intent.Title)
	author := strings.TrimSpace(intent.Author)

	if intent.HasTitle() && intent.HasAuthor() {
		queries = append(queries, url.Values{"title": {title}, "author": {author}})
	}
	if intent.HasTitle() {
		queries = append(queries, url.Values{"title": {title}})
	}
	if intent.HasAuthor() {
		queries = append(queries, url.Values{"author": {author}})
	}
	if intent.HasKeywords() {
		queries = append(queries, url.Values{"q": {strings.Join(intent.Keywords, " ")}})
	}
	if len(queries) == 0 && strings.TrimSpace(intent.OriginalQuery) != "" {
		queries = append(queries, url.Values{"q": {intent.OriginalQuery}})
	}
	return queries
}

// merge concatenates result lists in order, keeping the first record for
// each key and stopping at max records.
func merge(lists [][]types.Book, max int) []types.Book {
	seen := make(map[string]bool)
	out := []types.Book{}
	for _, list := range lists {
		for _, b := range list {
			if len(out) >= max {
				return out
			}
			if seen[b.Key] {
				continue
			}
			seen[b.Key] = true
			out = append(out, b)
		}
	}
	return out
}
