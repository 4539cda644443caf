// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/findthatbook/internal/finder"
	"github.com/pdiddy/findthatbook/internal/match"
	"github.com/pdiddy/findthatbook/pkg/types"
)

func sampleResponse() *finder.Response {
	in := types.SearchIntent{
		Title:         "The Hobbit",
		Author:        "J.R.R. Tolkien",
		Year:          types.Year(1937),
		Keywords:      []string{"illustrated"},
		OriginalQuery: "tolkien hobbit illustrated 1937",
	}
	books := []types.Book{
		{Key: "/works/OL27482W", Title: "The Hobbit", Authors: []string{"J.R.R. Tolkien"}, FirstPublishYear: types.Year(1937), Subjects: []string{"Fantasy"}},
		{Key: "/works/OL1W", Title: "The Hobbit Companion", Authors: []string{"David Day", "Lidia Postma"}},
		{Key: "/works/OL2W", Title: "Dune", Authors: []string{"Frank Herbert"}},
	}
	candidates := match.NewRanker(nil).Rank(books, in, 5)
	resp := finder.NewResponse(in.OriginalQuery, in, candidates, 2*time.Millisecond)
	resp.Books = books
	return resp
}

func TestSearchFileRoundTrip(t *testing.T) {
	resp := sampleResponse()
	path := filepath.Join(t.TempDir(), "hobbit.yaml")

	require.NoError(t, WriteSearchFile(path, NewSearchFile(resp, 5)))

	got, err := ReadSearchFile(path)
	require.NoError(t, err)
	assert.Equal(t, resp.OriginalQuery, got.Query)
	assert.Equal(t, resp.Intent, got.Intent)
	assert.Equal(t, resp.Books, got.Books)
	require.Len(t, got.Candidates, len(resp.Ranked))
	assert.Equal(t, resp.Ranked[0].MatchStrength, got.Candidates[0].MatchStrength)
	assert.Equal(t, 3, got.Summary.Books)
	assert.Equal(t, 5, got.Summary.MaxResults)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "match_strength: Exact")
}

func TestReadSearchFileFillsOriginalQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hand.yaml")
	content := `query: mark huckleberry
intent:
  title: The Adventures of Huckleberry Finn
  author: Mark Twain
books:
  - key: /works/OL53908W
    title: The Adventures of Huckleberry Finn
    authors: [Mark Twain]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadSearchFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mark huckleberry", got.Intent.OriginalQuery)
	require.Len(t, got.Books, 1)
	assert.Equal(t, []string{"Mark Twain"}, got.Books[0].Authors)
}

func TestReadSearchFileErrors(t *testing.T) {
	_, err := ReadSearchFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading search file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("books: {not: [a list"), 0o644))
	_, err = ReadSearchFile(path)
	assert.ErrorContains(t, err, "parsing search file")
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleResponse(), &buf)
	out := buf.String()

	assert.Contains(t, out, "Query: tolkien hobbit illustrated 1937")
	assert.Contains(t, out, `title="The Hobbit" author="J.R.R. Tolkien" year=1937 keywords=illustrated`)
	assert.Contains(t, out, "Exact")
	assert.Contains(t, out, "David Day et al.")
	assert.Contains(t, out, `- Title exact match: "The Hobbit"`)
	assert.NotContains(t, out, "Dune")
	assert.Contains(t, out, "2 candidates in 2.0 ms")
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(finder.NewResponse("zzqq", types.SearchIntent{}, nil, 0), &buf)
	assert.Contains(t, buf.String(), "Intent: (none)")
	assert.Contains(t, buf.String(), "No matching books found.")
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(sampleResponse(), &buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "tolkien hobbit illustrated 1937", decoded["original_query"])
	assert.NotContains(t, decoded, "Books")
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
}
