// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package intent

import (
	"bytes"
	"text/template"
)

// extractionPromptTmpl asks the model for a bare JSON object with title,
// author, year and keywords.
var extractionPromptTmpl = template.Must(template.New("extraction").Parse(`You are a book identification assistant. Extract structured information from the following book search query.

Query: {{printf "%q" .Query}}

Extract the following information and respond ONLY with a valid JSON object (no markdown, no code blocks):
{
    "title": "extracted book title or null if not identifiable",
    "author": "extracted author name or null if not identifiable",
    "year": extracted year as number or null if not present,
    "keywords": ["array", "of", "relevant", "keywords"]
}

Rules:
- For author names, use the full name if possible (e.g., "Mark Twain" not "Twain")
- Keywords should include any descriptive terms like "illustrated", "first edition", etc.
- If the query seems to contain a misspelling, try to identify the correct title/author
- Common patterns: "author title", "title author", "title year", etc.
- Examples of queries and expected extractions:
  - "mark huckleberry" -> title: "The Adventures of Huckleberry Finn", author: "Mark Twain"
  - "tolkien hobbit illustrated 1937" -> title: "The Hobbit", author: "J.R.R. Tolkien", year: 1937, keywords: ["illustrated"]

Respond with ONLY the JSON object, nothing else.
`))

func renderPrompt(query string) (string, error) {
	var buf bytes.Buffer
	if err := extractionPromptTmpl.Execute(&buf, struct{ Query string }{Query: query}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
