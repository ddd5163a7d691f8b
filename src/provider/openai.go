package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// OpenAIWireClient speaks the OpenAI chat-completions wire format. Perplexity
// and Grok expose the same format, so one client serves all three behind
// different base URLs.
type OpenAIWireClient struct {
	provider Provider
	cfg      Config
	http     *http.Client
}

func NewOpenAIWireClient(p Provider, cfg Config) *OpenAIWireClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL(p)
	}
	return &OpenAIWireClient{provider: p, cfg: cfg, http: cfg.httpClient()}
}

func (c *OpenAIWireClient) Provider() Provider { return c.provider }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *OpenAIWireClient) Complete(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		model = DefaultModel(c.provider)
	}
	payload, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
		MaxTokens:   4096,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", c.provider.Title(), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", apiError(c.provider, resp)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("%s: %s", c.provider.Title(), out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%s: empty response", c.provider.Title())
	}
	return out.Choices[0].Message.Content, nil
}
