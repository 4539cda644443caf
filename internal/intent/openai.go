// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package intent

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT4oMini

// OpenAIBackend calls an OpenAI-compatible chat completion endpoint in
// JSON mode.
type OpenAIBackend struct {
	client          *openai.Client
	model           string
	temperature     float64
	maxOutputTokens int
}

// NewOpenAIBackend returns a backend for apiKey. A non-empty baseURL
// targets an OpenAI-compatible service instead of api.openai.com.
func NewOpenAIBackend(apiKey, baseURL, model string, temperature float64, maxOutputTokens int, httpClient *http.Client) *OpenAIBackend {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	if maxOutputTokens <= 0 {
		maxOutputTokens = defaultMaxOutputTokens
	}
	return &OpenAIBackend{
		client:          openai.NewClientWithConfig(cfg),
		model:           model,
		temperature:     temperature,
		maxOutputTokens: maxOutputTokens,
	}
}

// Name returns the backend identifier.
func (o *OpenAIBackend) Name() string { return "openai" }

// Complete sends prompt as a single user message and returns the first
// choice's content.
func (o *OpenAIBackend) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(o.temperature),
		MaxTokens:   o.maxOutputTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("calling OpenAI API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyReply
	}
	return resp.Choices[0].Message.Content, nil
}
