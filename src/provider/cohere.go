package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CohereClient speaks the Cohere v2 chat API.
type CohereClient struct {
	cfg  Config
	http *http.Client
}

func NewCohereClient(cfg Config) *CohereClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL(Cohere)
	}
	return &CohereClient{cfg: cfg, http: cfg.httpClient()}
}

func (c *CohereClient) Provider() Provider { return Cohere }

type cohereRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type cohereResponse struct {
	Message struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"message"`
}

func (c *CohereClient) Complete(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		model = DefaultModel(Cohere)
	}
	payload, err := json.Marshal(cohereRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("cohere request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", apiError(Cohere, resp)
	}

	var out cohereResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	for _, block := range out.Message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("cohere: no text content in response")
}
