// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package intent

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pdiddy/findthatbook/internal/httputil"
	"github.com/pdiddy/findthatbook/pkg/types"
)

// NewBackend builds the backend selected by cfg.Provider. Gemini is the default.
func NewBackend(cfg types.ExtractionConfig) (Backend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s API key is not configured", providerOrDefault(cfg.Provider))
	}
	client := &http.Client{Timeout: cfg.HTTPConfig.Timeout}

	switch providerOrDefault(cfg.Provider) {
	case types.ProviderGemini:
		return &GeminiBackend{
			APIKey:          cfg.APIKey,
			Model:           cfg.Model,
			BaseURL:         cfg.BaseURL,
			Temperature:     cfg.Temperature,
			MaxOutputTokens: cfg.MaxOutputTokens,
			MaxRetries:      cfg.HTTPConfig.MaxRetries,
			Client:          client,
		}, nil
	case types.ProviderOpenAI:
		return NewOpenAIBackend(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxOutputTokens, client), nil
	default:
		return nil, fmt.Errorf("unknown extraction provider %q", cfg.Provider)
	}
}

// New wires a Service from cfg, including its circuit breaker.
func New(cfg types.ExtractionConfig, logger *slog.Logger) (*Service, error) {
	backend, err := NewBackend(cfg)
	if err != nil {
		return nil, err
	}
	breaker := httputil.NewBreaker("intent-"+backend.Name(), cfg.Breaker, logger)
	return NewService(backend, breaker, logger), nil
}

func providerOrDefault(p types.AIProvider) types.AIProvider {
	if p == "" {
		return types.ProviderGemini
	}
	return p
}
