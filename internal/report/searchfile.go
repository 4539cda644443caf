// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report saves searches to YAML and renders them for the terminal.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/findthatbook/internal/finder"
	"github.com/pdiddy/findthatbook/pkg/types"
)

// SearchFile is the on-disk form of one search: the intent, the catalog
// records it produced and their ranking. A saved file can be re-ranked
// later without calling the extraction backend or the catalog.
type SearchFile struct {
	Query      string             `yaml:"query"`
	Intent     types.SearchIntent `yaml:"intent"`
	Books      []types.Book       `yaml:"books"`
	Candidates []types.Candidate  `yaml:"candidates,omitempty"`
	Summary    Summary            `yaml:"summary"`
}

// Summary stores counts and a timestamp.
type Summary struct {
	Books      int       `yaml:"books"`
	Candidates int       `yaml:"candidates"`
	MaxResults int       `yaml:"max_results"`
	Timestamp  time.Time `yaml:"timestamp"`
}

// NewSearchFile captures resp for saving.
func NewSearchFile(resp *finder.Response, maxResults int) SearchFile {
	return SearchFile{
		Query:      resp.OriginalQuery,
		Intent:     resp.Intent,
		Books:      resp.Books,
		Candidates: resp.Ranked,
		Summary: Summary{
			Books:      len(resp.Books),
			Candidates: len(resp.Ranked),
			MaxResults: maxResults,
			Timestamp:  time.Now().UTC(),
		},
	}
}

// WriteSearchFile saves f to path as YAML.
func WriteSearchFile(path string, f SearchFile) error {
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling search file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSearchFile loads a previously saved search file.
func ReadSearchFile(path string) (*SearchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading search file: %w", err)
	}
	var f SearchFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing search file: %w", err)
	}
	if f.Intent.OriginalQuery == "" {
		f.Intent.OriginalQuery = f.Query
	}
	return &f, nil
}
