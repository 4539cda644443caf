// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package intent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/findthatbook/internal/httputil"
)

// geminiAPIBase is the Gemini REST root. Package-level var for test substitution.
var geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta"

const (
	defaultGeminiModel     = "gemini-1.5-flash"
	defaultTemperature     = 0.1
	defaultMaxOutputTokens = 256
)

// GeminiBackend calls the Gemini generateContent endpoint.
type GeminiBackend struct {
	APIKey          string
	Model           string
	BaseURL         string
	Temperature     float64
	MaxOutputTokens int
	MaxRetries      int
	Client          *http.Client
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Name returns the backend identifier.
func (g *GeminiBackend) Name() string { return "gemini" }

// Complete sends prompt as a single user turn and returns the first
// candidate's first text part.
func (g *GeminiBackend) Complete(ctx context.Context, prompt string) (string, error) {
	model := g.Model
	if model == "" {
		model = defaultGeminiModel
	}
	base := strings.TrimRight(g.BaseURL, "/")
	if base == "" {
		base = geminiAPIBase
	}
	temp := g.Temperature
	if temp <= 0 {
		temp = defaultTemperature
	}
	maxTokens := g.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxOutputTokens
	}

	body, err := json.Marshal(geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{Temperature: temp, MaxOutputTokens: maxTokens},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", base, url.PathEscape(model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.APIKey)

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, g.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("Gemini API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("decoding Gemini response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", errEmptyReply
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
