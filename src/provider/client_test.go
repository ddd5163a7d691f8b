package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIWireComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "hello", req.Messages[0].Content)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "hi there"}},
			},
		})
	}))
	defer srv.Close()

	c := NewOpenAIWireClient(OpenAI, Config{APIKey: "test-key", BaseURL: srv.URL})
	out, err := c.Complete(context.Background(), "", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", out)
}

func TestOpenAIWireSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer srv.Close()

	c := NewOpenAIWireClient(OpenAI, Config{APIKey: "bad", BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), "gpt-4o", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "bad key")
}

func TestAnthropicComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": "claude says hi"},
			},
		})
	}))
	defer srv.Close()

	c := NewAnthropicClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	out, err := c.Complete(context.Background(), "", "hello")
	require.NoError(t, err)
	assert.Equal(t, "claude says hi", out)
}

func TestGeminiComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "gemini says hi"}}}},
			},
		})
	}))
	defer srv.Close()

	c := NewGeminiClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	out, err := c.Complete(context.Background(), "gemini-2.0-flash", "hello")
	require.NoError(t, err)
	assert.Equal(t, "gemini says hi", out)
}

func TestCohereComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]any{
				"content": []map[string]string{{"type": "text", "text": "cohere says hi"}},
			},
		})
	}))
	defer srv.Close()

	c := NewCohereClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	out, err := c.Complete(context.Background(), "", "hello")
	require.NoError(t, err)
	assert.Equal(t, "cohere says hi", out)
}

func TestCompleteHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewOpenAIWireClient(OpenAI, Config{APIKey: "k", BaseURL: srv.URL})
	_, err := c.Complete(ctx, "gpt-4o", "hello")
	assert.Error(t, err)
}

func TestNewClientDispatch(t *testing.T) {
	for _, p := range All() {
		c, err := NewClient(p, "key")
		require.NoError(t, err, p)
		assert.Equal(t, p, c.Provider())
	}
	_, err := NewClient(Unknown, "key")
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}
