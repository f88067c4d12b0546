package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idea-to-deploy/forge-backend/internal/logger"
)

func fakeUpstream(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func completionResponse(content string) string {
	return `{"choices": [{"message": {"content": ` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestEnabled(t *testing.T) {
	var nilClient *Client
	assert.False(t, nilClient.Enabled())
	assert.False(t, New(Config{}, logger.NewNop(), nil).Enabled())
	assert.True(t, New(Config{APIKey: "k"}, logger.NewNop(), nil).Enabled())
}

func TestComplete_Success(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	srv := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse("generated text")))
	})

	c := New(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model", RequestsSec: 100}, logger.NewNop(), nil)
	out, err := c.Complete(context.Background(), "write a plan")
	require.NoError(t, err)

	assert.Equal(t, "generated text", out)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "write a plan", gotReq.Messages[0].Content)
}

func TestComplete_UpstreamError(t *testing.T) {
	srv := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	})

	c := New(Config{APIKey: "k", BaseURL: srv.URL, RequestsSec: 100}, logger.NewNop(), nil)
	_, err := c.Complete(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestComplete_EmptyCompletion(t *testing.T) {
	srv := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	})

	c := New(Config{APIKey: "k", BaseURL: srv.URL, RequestsSec: 100}, logger.NewNop(), nil)
	_, err := c.Complete(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty completion")
}

func TestComplete_TransportError(t *testing.T) {
	srv := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {})
	url := srv.URL
	srv.Close()

	c := New(Config{APIKey: "k", BaseURL: url, RequestsSec: 100}, logger.NewNop(), nil)
	_, err := c.Complete(context.Background(), "p")
	assert.Error(t, err)
}

func TestComplete_Disabled(t *testing.T) {
	c := New(Config{}, logger.NewNop(), nil)
	_, err := c.Complete(context.Background(), "p")
	assert.Error(t, err)
}
