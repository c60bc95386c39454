// Package llm talks to a hosted large-language-model API. Configuration
// is injected at construction; nothing here reads ambient process state.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Client completes a conversation against a hosted model.
type Client interface {
	Complete(ctx context.Context, system string, messages []Message) (string, error)
}

// Config is resolved once at startup and passed in.
type Config struct {
	APIKey    string
	Model     string
	BaseURL   string // empty means the provider default
	MaxTokens int
	Timeout   time.Duration
}

const (
	defaultMaxTokens = 4096
	defaultTimeout   = 120 * time.Second
)

func (c Config) withDefaults() Config {
	if c.MaxTokens == 0 {
		c.MaxTokens = defaultMaxTokens
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// New constructs a client for the named provider: "anthropic" or
// "openai" (any OpenAI-compatible endpoint, including local servers).
func New(provider string, cfg Config) (Client, error) {
	cfg = cfg.withDefaults()
	switch provider {
	case "anthropic":
		return &AnthropicClient{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}, nil
	case "openai":
		return &OpenAIClient{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}, nil
	}
	return nil, fmt.Errorf("unknown provider: %s", provider)
}
