package provider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoik/scribe/internal/provider"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *provider.AnthropicClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	viper.Set("provider.api_url", srv.URL)
	viper.Set("provider.api_key", "test-key")
	viper.Set("provider.model", "test-model")
	viper.Set("provider.max_tokens", 256)
	t.Cleanup(viper.Reset)

	return provider.NewAnthropicClient()
}

func TestGenerateTextRequestShape(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	var gotBody struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": "Subject\n\nBody"},
			},
		})
	})

	text, err := client.GenerateText(context.Background(), "write me an email")
	require.NoError(t, err)

	assert.Equal(t, "Subject\n\nBody", text)
	assert.Equal(t, "/v1/messages", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "2023-06-01", gotVersion)
	assert.Equal(t, "test-model", gotBody.Model)
	assert.Equal(t, 256, gotBody.MaxTokens)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Equal(t, "write me an email", gotBody.Messages[0].Content)
}

func TestGenerateTextJoinsTextBlocks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": "Subject"},
				{"type": "tool_use", "text": "ignored"},
				{"type": "text", "text": "\n\nBody"},
			},
		})
	})

	text, err := client.GenerateText(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "Subject\n\nBody", text)
}

func TestGenerateTextAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{
				"type":    "authentication_error",
				"message": "invalid api key",
			},
		})
	})

	_, err := client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider error (401)")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestGenerateTextMalformedErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	})

	_, err := client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider error (500)")
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestGenerateTextEmptyContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"content": []any{}})
	})

	text, err := client.GenerateText(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Empty(t, text, "empty content is reported as empty text, classified by the caller")
}
