package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/randalmurphal/pagekit/request"
	"github.com/randalmurphal/pagekit/tokens"
)

// DefaultBackendURL is the answering backend used when none is configured.
const DefaultBackendURL = "http://localhost:8000"

// Config holds pagekit settings.
type Config struct {
	// BackendURL is the base URL of the answering backend.
	BackendURL string `json:"backend_url" yaml:"backend_url" toml:"backend_url"`

	// Language is the answer language and truncation notice locale.
	// Values: "pt-BR", "pt-PT", "en", "es"
	Language string `json:"language" yaml:"language" toml:"language"`

	// MaxTokens is the backend's per-request token limit.
	// Only change this if the backend's limit changes.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" toml:"max_tokens"`

	// Stream selects the streaming endpoint.
	Stream bool `json:"stream" yaml:"stream" toml:"stream"`
}

// Default returns a Config with the backend defaults.
func Default() Config {
	return Config{
		BackendURL: DefaultBackendURL,
		Language:   string(request.DefaultLanguage),
		MaxTokens:  tokens.DefaultMaxTokens,
	}
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables use PAGEKIT_ prefix and take precedence over existing values.
//
// Supported variables:
//   - PAGEKIT_BACKEND_URL: Backend base URL
//   - PAGEKIT_LANGUAGE: Answer language
//   - PAGEKIT_MAX_TOKENS: Token limit
//   - PAGEKIT_STREAM: Use the streaming endpoint ("true"/"false")
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("PAGEKIT_BACKEND_URL"); v != "" {
		c.BackendURL = v
	}
	if v := os.Getenv("PAGEKIT_LANGUAGE"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("PAGEKIT_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxTokens = n
		}
	}
	if v := os.Getenv("PAGEKIT_STREAM"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Stream = b
		}
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := Default()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("%w: backend_url is required", ErrInvalid)
	}
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: backend_url %q is not an absolute URL", ErrInvalid, c.BackendURL)
	}
	if _, err := request.ParseLanguage(c.Language); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("%w: max_tokens must be > 0, got %d", ErrInvalid, c.MaxTokens)
	}
	return nil
}

// Endpoint returns the ask endpoint for the configured mode.
func (c Config) Endpoint() string {
	if c.Stream {
		return c.BackendURL + "/ask/stream"
	}
	return c.BackendURL + "/ask"
}

// WithBackendURL returns a copy of the config with the specified backend URL.
func (c Config) WithBackendURL(u string) Config {
	c.BackendURL = u
	return c
}

// WithLanguage returns a copy of the config with the specified language.
func (c Config) WithLanguage(lang string) Config {
	c.Language = lang
	return c
}

// WithMaxTokens returns a copy of the config with the specified token limit.
func (c Config) WithMaxTokens(n int) Config {
	c.MaxTokens = n
	return c
}
