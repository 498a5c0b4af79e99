package anthropic

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicheck/medicheck/internal/infrastructure/config"
)

func TestNewClient(t *testing.T) {
	client, err := NewClient(config.LLMConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
	assert.Nil(t, client)

	client, err = NewClient(config.LLMConfig{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, string(client.model))
	assert.Equal(t, "anthropic", client.Name())
}

func TestClient_Complete(t *testing.T) {
	var body map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-haiku-latest",
"content":[{"type":"text","text":"Response: "},{"type":"text","text":"hello"}],
"stop_reason":"end_turn","stop_sequence":null,"usage":{"input_tokens":3,"output_tokens":2}}`))
	}))
	defer srv.Close()

	client, err := NewClient(config.LLMConfig{APIKey: "test-key", BaseURL: srv.URL, Temperature: 0.2})
	require.NoError(t, err)

	out, err := client.Complete(t.Context(), "hi")
	require.NoError(t, err)

	assert.Equal(t, "Response: hello", out)
	assert.Equal(t, "claude-3-5-haiku-latest", body["model"])
	assert.EqualValues(t, DefaultMaxTokens, body["max_tokens"])
}

func TestClient_Complete_NoRetry(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"overloaded"}}`))
	}))
	defer srv.Close()

	client, err := NewClient(config.LLMConfig{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Complete(t.Context(), "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "calling Anthropic")
	assert.Equal(t, int32(1), calls.Load())
}
