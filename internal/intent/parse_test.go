// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/findthatbook/pkg/types"
)

func TestParseReply(t *testing.T) {
	const query = "tolkien hobbit illustrated 1937"
	tests := []struct {
		name  string
		reply string
		want  types.SearchIntent
	}{
		{
			name:  "plain object",
			reply: `{"title": "The Hobbit", "author": "J.R.R. Tolkien", "year": 1937, "keywords": ["illustrated"]}`,
			want: types.SearchIntent{
				Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: types.Year(1937),
				Keywords: []string{"illustrated"}, OriginalQuery: query,
			},
		},
		{
			name:  "fenced block",
			reply: "```json\n{\"title\": \"The Hobbit\", \"author\": null, \"year\": null, \"keywords\": []}\n```",
			want:  types.SearchIntent{Title: "The Hobbit", OriginalQuery: query},
		},
		{
			name:  "year as string and literal null text",
			reply: `{"title": "null", "author": " Mark Twain ", "year": "1884", "keywords": [" ", "classic"]}`,
			want: types.SearchIntent{
				Author: "Mark Twain", Year: types.Year(1884),
				Keywords: []string{"classic"}, OriginalQuery: query,
			},
		},
		{
			name:  "non-positive year dropped",
			reply: `{"title": "Dune", "year": 0}`,
			want:  types.SearchIntent{Title: "Dune", OriginalQuery: query},
		},
		{
			name:  "trailing commas repaired",
			reply: `{"title": "Dune", "keywords": ["sand", "spice",],}`,
			want:  types.SearchIntent{Title: "Dune", Keywords: []string{"sand", "spice"}, OriginalQuery: query},
		},
		{
			name:  "truncated object repaired",
			reply: `{"title": "Dune", "year": 1965`,
			want:  types.SearchIntent{Title: "Dune", Year: types.Year(1965), OriginalQuery: query},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseReply(tt.reply, query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReplyRejectsNonObjects(t *testing.T) {
	for _, reply := range []string{`["The Hobbit"]`, `42`, `"The Hobbit"`} {
		_, err := parseReply(reply, "q")
		assert.ErrorIs(t, err, errMalformedReply, reply)
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}```  "))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{"", nil},
		{"null", nil},
		{"1937", types.Year(1937)},
		{`"1937"`, types.Year(1937)},
		{"1937.0", types.Year(1937)},
		{"-5", nil},
		{`"soon"`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseYear([]byte(tt.raw)))
		})
	}
}

func TestRenderPromptIncludesQuery(t *testing.T) {
	p, err := renderPrompt(`mark "huck" finn`)
	require.NoError(t, err)
	assert.Contains(t, p, `Query: "mark \"huck\" finn"`)
	assert.Contains(t, p, `"keywords": ["array", "of", "relevant", "keywords"]`)
	assert.Contains(t, p, "Respond with ONLY the JSON object")
}
