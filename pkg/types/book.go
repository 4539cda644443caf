// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for findthatbook: the search
// intent extracted from a free-text query, the catalog records returned by a
// catalog search, and the ranked candidates produced by the matching engine.
//
// See DESIGN.md § Data model.
package types

import "fmt"

const (
	coverURLFormat    = "https://covers.openlibrary.org/b/id/%s-M.jpg"
	openLibraryURLFmt = "https://openlibrary.org%s"
)

// Book is one candidate record returned by the catalog search. The matching
// engine only reads Key, Title, Authors, FirstPublishYear and Subjects; the
// remaining fields are passed through to callers.
type Book struct {
	// Key is the stable catalog identifier (e.g. "/works/OL27448W").
	Key string `json:"key" yaml:"key"`

	// Title is the record title as returned by the catalog.
	Title string `json:"title" yaml:"title"`

	// Authors lists author display names in catalog order.
	Authors []string `json:"authors" yaml:"authors"`

	// FirstPublishYear is nil when the catalog does not know the year.
	FirstPublishYear *int `json:"first_publish_year,omitempty" yaml:"first_publish_year,omitempty"`

	// Subjects lists catalog subject headings.
	Subjects []string `json:"subjects,omitempty" yaml:"subjects,omitempty"`

	CoverID       string   `json:"cover_id,omitempty" yaml:"cover_id,omitempty"`
	ISBN          string   `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	Publishers    []string `json:"publishers,omitempty" yaml:"publishers,omitempty"`
	Languages     []string `json:"languages,omitempty" yaml:"languages,omitempty"`
	NumberOfPages *int     `json:"number_of_pages,omitempty" yaml:"number_of_pages,omitempty"`
}

// CoverURL returns the medium-size cover image URL, or "" without a cover id.
func (b Book) CoverURL() string {
	if b.CoverID == "" {
		return ""
	}
	return fmt.Sprintf(coverURLFormat, b.CoverID)
}

// OpenLibraryURL returns the catalog page for the record.
func (b Book) OpenLibraryURL() string {
	return fmt.Sprintf(openLibraryURLFmt, b.Key)
}

// Year returns a pointer to y. It keeps literals for optional years short.
func Year(y int) *int {
	return &y
}
