// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package intent turns a free-text book query into a structured
// SearchIntent using a generative-text backend.
package intent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pdiddy/findthatbook/internal/httputil"
	"github.com/pdiddy/findthatbook/pkg/types"
)

// ErrExtraction reports that the backend could not be reached or gave
// no usable answer.
var ErrExtraction = errors.New("intent extraction failed")

// Extractor produces a SearchIntent from a raw query.
type Extractor interface {
	Extract(ctx context.Context, query string) (types.SearchIntent, error)
}

// Backend sends a prompt to a generative-text API and returns the reply text.
type Backend interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service is the Extractor used in production. It renders the extraction
// prompt, calls the backend through an optional circuit breaker and parses
// the reply. A reply that cannot be parsed yields a keyword-only intent.
type Service struct {
	backend Backend
	breaker *httputil.Breaker
	log     *slog.Logger
}

// NewService returns a Service. breaker and logger may be nil.
func NewService(backend Backend, breaker *httputil.Breaker, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		backend: backend,
		breaker: breaker,
		log:     logger.With("component", "intent", "backend", backend.Name()),
	}
}

// Extract implements Extractor. OriginalQuery is always the raw query.
func (s *Service) Extract(ctx context.Context, query string) (types.SearchIntent, error) {
	prompt, err := renderPrompt(query)
	if err != nil {
		return types.SearchIntent{}, fmt.Errorf("rendering prompt: %w", err)
	}

	var reply string
	err = s.breaker.Do(func() error {
		var callErr error
		reply, callErr = s.backend.Complete(ctx, prompt)
		return callErr
	})
	if err == nil && strings.TrimSpace(reply) == "" {
		err = errEmptyReply
	}
	if err != nil {
		s.log.Error("extraction call failed", "query", query, "error", err)
		return types.SearchIntent{}, fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	intent, err := parseReply(reply, query)
	if err != nil {
		s.log.Warn("unparseable extraction reply, using keyword fallback", "query", query, "reply", reply, "error", err)
		return Fallback(query), nil
	}

	s.log.Info("extracted intent",
		"query", query,
		"title", intent.Title,
		"author", intent.Author,
		"keywords", strings.Join(intent.Keywords, ", "))
	return intent, nil
}

// Fallback returns an intent whose keywords are the whitespace-separated
// words of query.
func Fallback(query string) types.SearchIntent {
	return types.SearchIntent{
		Keywords:      strings.Fields(query),
		OriginalQuery: query,
	}
}
