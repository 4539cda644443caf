package types

import "time"

// HTTPConfig holds shared HTTP settings used by collaborators that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "findthatbook/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries bounds retries on HTTP 429, 502, 503 and 504 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// BreakerConfig configures the circuit breaker placed in front of a remote
// collaborator.
type BreakerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// MaxRequests is the number of probe requests allowed while half-open.
	MaxRequests uint32 `json:"max_requests" yaml:"max_requests"`

	// Interval is the closed-state window after which counts reset.
	Interval time.Duration `json:"interval" yaml:"interval"`

	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MinRequests is the request count required before the breaker may trip.
	MinRequests uint32 `json:"min_requests" yaml:"min_requests"`

	// FailureRatio trips the breaker once failures/requests reaches it.
	FailureRatio float64 `json:"failure_ratio" yaml:"failure_ratio"`
}

// CatalogConfig holds settings for the catalog search client.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the catalog API root (default https://openlibrary.org).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// FanOut is the number of candidate records requested from the
	// catalog per search (default 20).
	FanOut int `json:"fan_out" yaml:"fan_out"`

	// Concurrency bounds concurrent query variants (default 4).
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	// RequestsPerSecond throttles catalog calls; 0 disables throttling.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// CacheSize is the number of decoded responses kept in memory; 0 disables the cache.
	CacheSize int `json:"cache_size" yaml:"cache_size"`

	Breaker BreakerConfig `json:"breaker" yaml:"breaker"`
}

// AIProvider selects the generative-text backend used for intent extraction.
type AIProvider string

const (
	ProviderGemini AIProvider = "gemini"
	ProviderOpenAI AIProvider = "openai"
)

// AIConfig holds shared settings for calls to a generative-text API.
type AIConfig struct {
	// Provider selects gemini or openai.
	Provider AIProvider `json:"provider" yaml:"provider"`

	// Model is the model identifier (e.g. "gemini-1.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the provider endpoint root.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	Temperature     float64 `json:"temperature" yaml:"temperature"`
	MaxOutputTokens int     `json:"max_output_tokens" yaml:"max_output_tokens"`
}

// ExtractionConfig holds settings for the intent extraction stage.
type ExtractionConfig struct {
	AIConfig   `yaml:",inline"`
	HTTPConfig `yaml:"http"`

	Breaker BreakerConfig `json:"breaker" yaml:"breaker"`
}

// ServerConfig holds settings for the HTTP boundary.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// Mode is the gin mode: debug, release or test.
	Mode string `json:"mode" yaml:"mode"`

	// RequestTimeout bounds the handling of one search request.
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`

	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `json:"level" yaml:"level"`

	// Format is text or json.
	Format string `json:"format" yaml:"format"`
}

// Config groups all settings for the application.
type Config struct {
	Catalog    CatalogConfig    `json:"catalog" yaml:"catalog"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Server     ServerConfig     `json:"server" yaml:"server"`
	Log        LogConfig        `json:"log" yaml:"log"`
}
