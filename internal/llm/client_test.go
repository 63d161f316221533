package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hrdesk/internal/config"
	"github.com/spec-kit/hrdesk/internal/domain"
)

func newTestClient(url string) *Client {
	return NewClient(config.LLMConfig{
		BaseURL:   url,
		APIKey:    "sk-test",
		Model:     "gpt-4o-mini",
		MaxTokens: 256,
	})
}

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "gpt-4o-mini", payload["model"])

		messages := payload["messages"].([]any)
		require.Len(t, messages, 3)
		first := messages[0].(map[string]any)
		assert.Equal(t, "system", first["role"])

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "답변입니다 [CATEGORY:기타]"}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	transcript := []domain.Message{
		{Role: domain.RoleAssistant, Content: "안녕하세요"},
		{Role: domain.RoleUser, Content: "질문"},
	}

	reply, err := client.Complete(context.Background(), "persona", transcript)
	require.NoError(t, err)
	assert.Equal(t, "답변입니다 [CATEGORY:기타]", reply)
}

func TestComplete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "invalid_request_error", "message": "bad key"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), "persona", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), "persona", nil)
	assert.Error(t, err)
}

func TestComplete_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), "persona", nil)
	assert.Error(t, err)
}
