// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package finder

import (
	"time"

	"github.com/pdiddy/findthatbook/pkg/types"
)

// Response is the result of one search.
type Response struct {
	OriginalQuery    string          `json:"original_query" yaml:"original_query"`
	ExtractedInfo    IntentView      `json:"extracted_info" yaml:"extracted_info"`
	Candidates       []CandidateView `json:"candidates" yaml:"candidates"`
	TotalCandidates  int             `json:"total_candidates" yaml:"total_candidates"`
	ProcessingTimeMS float64         `json:"processing_time_ms" yaml:"processing_time_ms"`

	// Intent, Ranked and Books are kept for callers that persist a search.
	Intent types.SearchIntent `json:"-" yaml:"-"`
	Ranked []types.Candidate  `json:"-" yaml:"-"`
	Books  []types.Book       `json:"-" yaml:"-"`
}

// IntentView is the extracted intent as shown to callers.
type IntentView struct {
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Author   string   `json:"author,omitempty" yaml:"author,omitempty"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Year     *int     `json:"year,omitempty" yaml:"year,omitempty"`
}

// CandidateView is one ranked record as shown to callers.
type CandidateView struct {
	Key              string   `json:"key" yaml:"key"`
	Title            string   `json:"title" yaml:"title"`
	Authors          []string `json:"authors" yaml:"authors"`
	FirstPublishYear *int     `json:"first_publish_year,omitempty" yaml:"first_publish_year,omitempty"`
	CoverURL         string   `json:"cover_url,omitempty" yaml:"cover_url,omitempty"`
	OpenLibraryURL   string   `json:"open_library_url" yaml:"open_library_url"`
	MatchStrength    string   `json:"match_strength" yaml:"match_strength"`
	MatchScore       float64  `json:"match_score" yaml:"match_score"`
	MatchExplanation string   `json:"match_explanation" yaml:"match_explanation"`
	MatchReasons     []string `json:"match_reasons" yaml:"match_reasons"`
}

// NewResponse builds the caller-facing view of a ranked list.
func NewResponse(query string, in types.SearchIntent, candidates []types.Candidate, elapsed time.Duration) *Response {
	views := make([]CandidateView, 0, len(candidates))
	for _, c := range candidates {
		views = append(views, NewCandidateView(c))
	}
	keywords := in.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return &Response{
		OriginalQuery: query,
		ExtractedInfo: IntentView{
			Title:    in.Title,
			Author:   in.Author,
			Keywords: keywords,
			Year:     in.Year,
		},
		Candidates:       views,
		TotalCandidates:  len(views),
		ProcessingTimeMS: float64(elapsed.Microseconds()) / 1000,
		Intent:           in,
		Ranked:           candidates,
	}
}

// NewCandidateView flattens a candidate and its record.
func NewCandidateView(c types.Candidate) CandidateView {
	authors := c.Book.Authors
	if authors == nil {
		authors = []string{}
	}
	reasons := c.MatchReasons
	if reasons == nil {
		reasons = []string{}
	}
	return CandidateView{
		Key:              c.Book.Key,
		Title:            c.Book.Title,
		Authors:          authors,
		FirstPublishYear: c.Book.FirstPublishYear,
		CoverURL:         c.Book.CoverURL(),
		OpenLibraryURL:   c.Book.OpenLibraryURL(),
		MatchStrength:    c.MatchStrength.String(),
		MatchScore:       c.MatchScore,
		MatchExplanation: c.Explanation(),
		MatchReasons:     reasons,
	}
}
