package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/findthatbook/internal/secrets"
	"github.com/pdiddy/findthatbook/pkg/types"
)

const defaultGeminiModel = "gemini-1.5-flash"

// setDefaults registers every configuration key with its default.
func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.base_url", "https://openlibrary.org")
	v.SetDefault("catalog.timeout", 30*time.Second)
	v.SetDefault("catalog.user_agent", "")
	v.SetDefault("catalog.max_retries", 3)
	v.SetDefault("catalog.fan_out", 20)
	v.SetDefault("catalog.concurrency", 4)
	v.SetDefault("catalog.requests_per_second", 5.0)
	v.SetDefault("catalog.cache_size", 256)
	setBreakerDefaults(v, "catalog.breaker")

	v.SetDefault("extraction.provider", string(types.ProviderGemini))
	v.SetDefault("extraction.model", "")
	v.SetDefault("extraction.api_key", "")
	v.SetDefault("extraction.base_url", "")
	v.SetDefault("extraction.temperature", 0.1)
	v.SetDefault("extraction.max_output_tokens", 256)
	v.SetDefault("extraction.http.timeout", 30*time.Second)
	v.SetDefault("extraction.http.max_retries", 2)
	setBreakerDefaults(v, "extraction.breaker")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func setBreakerDefaults(v *viper.Viper, prefix string) {
	v.SetDefault(prefix+".enabled", true)
	v.SetDefault(prefix+".max_requests", 1)
	v.SetDefault(prefix+".interval", time.Minute)
	v.SetDefault(prefix+".timeout", 30*time.Second)
	v.SetDefault(prefix+".min_requests", 5)
	v.SetDefault(prefix+".failure_ratio", 0.6)
}

// loadConfig reads the typed configuration from v. The extraction API key
// falls back to the loaded secrets, then to the provider's usual
// environment variable.
func loadConfig(v *viper.Viper, loaded map[string]string) (types.Config, error) {
	cfg := types.Config{
		Catalog: types.CatalogConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:    v.GetDuration("catalog.timeout"),
				UserAgent:  v.GetString("catalog.user_agent"),
				MaxRetries: v.GetInt("catalog.max_retries"),
			},
			BaseURL:           v.GetString("catalog.base_url"),
			FanOut:            v.GetInt("catalog.fan_out"),
			Concurrency:       v.GetInt("catalog.concurrency"),
			RequestsPerSecond: v.GetFloat64("catalog.requests_per_second"),
			CacheSize:         v.GetInt("catalog.cache_size"),
			Breaker:           breakerConfig(v, "catalog.breaker"),
		},
		Extraction: types.ExtractionConfig{
			AIConfig: types.AIConfig{
				Provider:        types.AIProvider(strings.ToLower(v.GetString("extraction.provider"))),
				Model:           v.GetString("extraction.model"),
				APIKey:          v.GetString("extraction.api_key"),
				BaseURL:         v.GetString("extraction.base_url"),
				Temperature:     v.GetFloat64("extraction.temperature"),
				MaxOutputTokens: v.GetInt("extraction.max_output_tokens"),
			},
			HTTPConfig: types.HTTPConfig{
				Timeout:    v.GetDuration("extraction.http.timeout"),
				MaxRetries: v.GetInt("extraction.http.max_retries"),
			},
			Breaker: breakerConfig(v, "extraction.breaker"),
		},
		Server: types.ServerConfig{
			Addr:            v.GetString("server.addr"),
			Mode:            v.GetString("server.mode"),
			RequestTimeout:  v.GetDuration("server.request_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Log: types.LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if cfg.Catalog.UserAgent == "" {
		cfg.Catalog.UserAgent = "findthatbook/" + version
	}

	switch cfg.Extraction.Provider {
	case types.ProviderGemini:
		if cfg.Extraction.Model == "" {
			cfg.Extraction.Model = defaultGeminiModel
		}
		if cfg.Extraction.APIKey == "" {
			cfg.Extraction.APIKey = secrets.First(loaded, []string{secrets.GeminiAPIKey}, "GEMINI_API_KEY")
		}
	case types.ProviderOpenAI:
		if cfg.Extraction.APIKey == "" {
			cfg.Extraction.APIKey = secrets.First(loaded, []string{secrets.OpenAIAPIKey}, "OPENAI_API_KEY")
		}
	default:
		return cfg, fmt.Errorf("extraction.provider must be %q or %q, got %q",
			types.ProviderGemini, types.ProviderOpenAI, cfg.Extraction.Provider)
	}

	if cfg.Catalog.FanOut <= 0 {
		return cfg, fmt.Errorf("catalog.fan_out must be positive, got %d", cfg.Catalog.FanOut)
	}
	return cfg, nil
}

func breakerConfig(v *viper.Viper, prefix string) types.BreakerConfig {
	return types.BreakerConfig{
		Enabled:      v.GetBool(prefix + ".enabled"),
		MaxRequests:  v.GetUint32(prefix + ".max_requests"),
		Interval:     v.GetDuration(prefix + ".interval"),
		Timeout:      v.GetDuration(prefix + ".timeout"),
		MinRequests:  v.GetUint32(prefix + ".min_requests"),
		FailureRatio: v.GetFloat64(prefix + ".failure_ratio"),
	}
}

// newLogger returns a slog logger writing to stderr.
func newLogger(level, format string) *slog.Logger {
	return newLoggerTo(os.Stderr, level, format)
}

func newLoggerTo(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
