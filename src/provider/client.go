package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a minimal chat-completion client. Implementations are stateless
// and safe for concurrent use.
type Client interface {
	Provider() Provider
	// Complete sends one prompt and returns the assistant text. model may
	// be empty to use the provider default.
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// Config configures a concrete client. BaseURL and HTTPClient exist so tests
// can point a client at a local server.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

const defaultTimeout = 120 * time.Second

func (c Config) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// ErrUnsupportedProvider is returned by NewClient for a provider it cannot
// construct.
var ErrUnsupportedProvider = errors.New("unsupported provider")

// NewClient builds the right client for a provider using production
// endpoints. Perplexity and Grok speak the OpenAI chat wire format, so they
// share the OpenAI client with a different base URL.
func NewClient(p Provider, apiKey string) (Client, error) {
	cfg := Config{APIKey: apiKey, BaseURL: BaseURL(p)}
	switch p {
	case OpenAI, Perplexity, Grok:
		return NewOpenAIWireClient(p, cfg), nil
	case Anthropic:
		return NewAnthropicClient(cfg), nil
	case Google:
		return NewGeminiClient(cfg), nil
	case Cohere:
		return NewCohereClient(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, p)
	}
}

// apiError extracts a readable error from a non-2xx response body.
func apiError(p Provider, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return fmt.Errorf("%s API error (status %d): %s", p.Title(), resp.StatusCode, string(body))
}
