// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package finder runs a book search end to end: extract an intent from the
// query, fetch catalog records and rank them.
package finder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pdiddy/findthatbook/internal/catalog"
	"github.com/pdiddy/findthatbook/internal/intent"
	"github.com/pdiddy/findthatbook/internal/match"
	"github.com/pdiddy/findthatbook/pkg/types"
)

// Finder wires an extractor, a catalog searcher and a ranker.
type Finder struct {
	extractor intent.Extractor
	searcher  catalog.Searcher
	ranker    *match.Ranker
	fanOut    int
	log       *slog.Logger
}

// New returns a Finder. A nil ranker uses the default registry; a
// non-positive fanOut requests catalog.DefaultMaxResults records.
func New(extractor intent.Extractor, searcher catalog.Searcher, ranker *match.Ranker, fanOut int, logger *slog.Logger) *Finder {
	if ranker == nil {
		ranker = match.NewRanker(nil)
	}
	if fanOut <= 0 {
		fanOut = catalog.DefaultMaxResults
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Finder{
		extractor: extractor,
		searcher:  searcher,
		ranker:    ranker,
		fanOut:    fanOut,
		log:       logger.With("component", "finder"),
	}
}

// Find validates req and returns the ranked candidates. Errors from the
// extractor and searcher keep their intent.ErrExtraction and
// catalog.ErrSearch identity.
func (f *Finder) Find(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	in, err := f.extractor.Extract(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("extracting intent: %w", err)
	}

	books, err := f.searcher.Search(ctx, in, f.fanOut)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}

	candidates := f.ranker.Rank(books, in, req.MaxResults)
	resp := NewResponse(req.Query, in, candidates, time.Since(start))
	resp.Books = books

	f.log.Info("search completed",
		"query", req.Query,
		"books", len(books),
		"candidates", resp.TotalCandidates,
		"elapsed_ms", resp.ProcessingTimeMS)
	return resp, nil
}

// Rank scores books against a known intent without calling any remote
// collaborator.
func (f *Finder) Rank(in types.SearchIntent, books []types.Book, maxResults int) *Response {
	start := time.Now()
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	resp := NewResponse(in.OriginalQuery, in, f.ranker.Rank(books, in, maxResults), time.Since(start))
	resp.Books = books
	return resp
}
