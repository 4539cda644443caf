// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/pdiddy/findthatbook/internal/httputil"
	"github.com/pdiddy/findthatbook/pkg/types"
)

// openLibraryBase is the Open Library API root. Declared as a var so tests
// can substitute an httptest server.
var openLibraryBase = "https://openlibrary.org"

// searchFields limits the search response to what Book carries.
const searchFields = "key,title,author_name,first_publish_year,cover_i,subject,publisher,isbn,number_of_pages_median,language"

const (
	unknownTitle    = "Unknown Title"
	maxSubjects     = 10
	maxPublishers   = 5
	defaultParallel = 4
)

// OpenLibraryClient searches the Open Library catalog. Query variants run
// concurrently; their results are merged in variant order.
type OpenLibraryClient struct {
	client      *http.Client
	baseURL     string
	userAgent   string
	maxRetries  int
	concurrency int
	limiter     *rate.Limiter
	cache       *lru.Cache[string, []types.Book]
	breaker     *httputil.Breaker
	log         *slog.Logger
}

// NewOpenLibraryClient returns a client configured from cfg. logger may be nil.
func NewOpenLibraryClient(cfg types.CatalogConfig, logger *slog.Logger) *OpenLibraryClient {
	if logger == nil {
		logger = slog.Default()
	}
	c := &OpenLibraryClient{
		client:      &http.Client{Timeout: cfg.Timeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
		maxRetries:  cfg.MaxRetries,
		concurrency: cfg.Concurrency,
		breaker:     httputil.NewBreaker("catalog-openlibrary", cfg.Breaker, logger),
		log:         logger.With("component", "catalog"),
	}
	if c.concurrency <= 0 {
		c.concurrency = defaultParallel
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), c.concurrency)
	}
	if cfg.CacheSize > 0 {
		// lru.New only fails for non-positive sizes.
		c.cache, _ = lru.New[string, []types.Book](cfg.CacheSize)
	}
	return c
}

// Name returns the backend identifier.
func (c *OpenLibraryClient) Name() string { return "openlibrary" }

// Search runs every query variant for intent and returns up to maxResults
// distinct records. Any transport or status failure fails the whole search
// with ErrSearch; a variant whose body cannot be decoded is skipped.
func (c *OpenLibraryClient) Search(ctx context.Context, intent types.SearchIntent, maxResults int) ([]types.Book, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	queries := BuildQueries(intent)
	if len(queries) == 0 {
		return []types.Book{}, nil
	}

	results := make([][]types.Book, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, q := range queries {
		g.Go(func() error {
			books, err := c.execute(gctx, q, maxResults)
			results[i] = books
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	books := merge(results, maxResults)
	c.log.Info("catalog search complete", "query", intent.OriginalQuery, "variants", len(queries), "books", len(books))
	return books, nil
}

func (c *OpenLibraryClient) execute(ctx context.Context, q url.Values, limit int) ([]types.Book, error) {
	params := url.Values{}
	for k, v := range q {
		params[k] = v
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fields", searchFields)

	base := c.baseURL
	if base == "" {
		base = openLibraryBase
	}
	reqURL := base + "/search.json?" + params.Encode()

	if c.cache != nil {
		if books, ok := c.cache.Get(reqURL); ok {
			c.log.Debug("catalog cache hit", "url", reqURL)
			return books, nil
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSearch, err)
		}
	}

	c.log.Debug("executing catalog search", "url", reqURL)

	var body []byte
	err := c.breaker.Do(func() error {
		var ferr error
		body, ferr = c.fetch(ctx, reqURL)
		return ferr
	})
	if err != nil {
		c.log.Error("catalog request failed", "url", reqURL, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		c.log.Warn("skipping undecodable catalog response", "url", reqURL, "error", err)
		return nil, nil
	}

	books := make([]types.Book, 0, len(sr.Docs))
	for _, d := range sr.Docs {
		books = append(books, d.toBook())
	}
	if c.cache != nil {
		c.cache.Add(reqURL, books)
	}
	return books, nil
}

func (c *OpenLibraryClient) fetch(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.client, req, c.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("Open Library request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("Open Library returned HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading Open Library response: %w", err)
	}
	return body, nil
}

type searchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []searchDoc `json:"docs"`
}

type searchDoc struct {
	Key                 string   `json:"key"`
	Title               *string  `json:"title"`
	AuthorName          []string `json:"author_name"`
	FirstPublishYear    *int     `json:"first_publish_year"`
	CoverID             *int64   `json:"cover_i"`
	Subject             []string `json:"subject"`
	Publisher           []string `json:"publisher"`
	ISBN                []string `json:"isbn"`
	NumberOfPagesMedian *int     `json:"number_of_pages_median"`
	Language            []string `json:"language"`
}

func (d searchDoc) toBook() types.Book {
	b := types.Book{
		Key:              d.Key,
		Title:            unknownTitle,
		Authors:          nonNil(d.AuthorName),
		FirstPublishYear: d.FirstPublishYear,
		Subjects:         capped(d.Subject, maxSubjects),
		Publishers:       capped(d.Publisher, maxPublishers),
		NumberOfPages:    d.NumberOfPagesMedian,
		Languages:        nonNil(d.Language),
	}
	if d.Title != nil {
		b.Title = *d.Title
	}
	if d.CoverID != nil {
		b.CoverID = strconv.FormatInt(*d.CoverID, 10)
	}
	if len(d.ISBN) > 0 {
		b.ISBN = d.ISBN[0]
	}
	return b
}

func capped(s []string, n int) []string {
	if len(s) > n {
		s = s[:n]
	}
	return nonNil(s)
}

func nonNil(s []string) []string {
	if len(s) == 0 {
		return []string{}
	}
	return append([]string(nil), s...)
}
