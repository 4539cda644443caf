// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// SearchIntent is the structured, possibly partial description of a book
// derived from a free-text query. Empty strings and a nil Year mean the
// field is absent. Values are not modified after construction.
type SearchIntent struct {
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Author   string   `json:"author,omitempty" yaml:"author,omitempty"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Year     *int     `json:"year,omitempty" yaml:"year,omitempty"`

	// OriginalQuery is the raw text the intent was extracted from.
	OriginalQuery string `json:"original_query,omitempty" yaml:"original_query,omitempty"`
}

// HasTitle reports whether the title is non-empty after trimming.
func (i SearchIntent) HasTitle() bool {
	return strings.TrimSpace(i.Title) != ""
}

// HasAuthor reports whether the author is non-empty after trimming.
func (i SearchIntent) HasAuthor() bool {
	return strings.TrimSpace(i.Author) != ""
}

// HasKeywords reports whether at least one keyword is non-empty after trimming.
func (i SearchIntent) HasKeywords() bool {
	for _, kw := range i.Keywords {
		if strings.TrimSpace(kw) != "" {
			return true
		}
	}
	return false
}

// HasYear reports whether a year is present.
func (i SearchIntent) HasYear() bool {
	return i.Year != nil
}

// IsEmpty reports whether the intent carries nothing to search for.
func (i SearchIntent) IsEmpty() bool {
	return !i.HasTitle() && !i.HasAuthor() && !i.HasKeywords() && !i.HasYear() &&
		strings.TrimSpace(i.OriginalQuery) == ""
}
