package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqlens/reqlens/internal/domain/ports"
)

// stubConfig satisfies Configurer without touching the environment.
type stubConfig struct {
	keys   map[string]string
	models map[string]string
}

func (s stubConfig) Credential(provider string, envKey string) string { return s.keys[provider] }

func (s stubConfig) Model(provider string) string { return s.models[provider] }

// stubProvider redirects an OpenAI-shaped provider at a test server.
type stubProvider struct {
	openAIProvider
	url string
}

func (s stubProvider) Name() string { return "stub" }

func (s stubProvider) RequestURL(model string, apiKey string) string { return s.url }

func TestDispatcherUnknownProvider(t *testing.T) {
	d := NewDispatcher(stubConfig{})

	_, err := d.Complete(context.Background(), "FooAI", testMessages)

	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrUnknownProvider)
}

func TestDispatcherMissingCredential(t *testing.T) {
	d := NewDispatcher(stubConfig{})

	_, err := d.send(context.Background(), stubProvider{}, testMessages)

	var missing *ports.MissingCredentialError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "stub", missing.Provider)
	assert.Equal(t, "stub API key not configured", missing.Error())
}

func TestDispatcherSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "  the answer  "}}]}`))
	}))
	defer srv.Close()

	d := NewDispatcher(stubConfig{keys: map[string]string{"stub": "sk-test"}})

	answer, err := d.send(context.Background(), stubProvider{url: srv.URL}, testMessages)

	require.NoError(t, err)
	assert.Equal(t, "the answer", answer, "answer must be trimmed")
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
}

func TestDispatcherModelOverride(t *testing.T) {
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	}))
	defer srv.Close()

	d := NewDispatcher(stubConfig{
		keys:   map[string]string{"stub": "sk-test"},
		models: map[string]string{"stub": "gpt-4o"},
	})

	_, err := d.send(context.Background(), stubProvider{url: srv.URL}, testMessages)

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", gotBody["model"])
}

func TestDispatcherProviderError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "nested error message surfaced",
			status:      http.StatusUnauthorized,
			body:        `{"error": {"message": "invalid api key"}}`,
			wantMessage: "invalid api key",
		},
		{
			name:        "top-level message surfaced",
			status:      http.StatusBadRequest,
			body:        `{"message": "model not found"}`,
			wantMessage: "model not found",
		},
		{
			name:        "unparseable body synthesized",
			status:      http.StatusBadGateway,
			body:        "<html>gateway error</html>",
			wantMessage: "request failed with status 502",
		},
		{
			name:        "empty error envelope synthesized",
			status:      http.StatusInternalServerError,
			body:        `{"error": {}}`,
			wantMessage: "request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			d := NewDispatcher(stubConfig{keys: map[string]string{"stub": "sk-test"}})

			_, err := d.send(context.Background(), stubProvider{url: srv.URL}, testMessages)

			var apiErr *ports.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestDispatcherMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected": "shape"}`))
	}))
	defer srv.Close()

	d := NewDispatcher(stubConfig{keys: map[string]string{"stub": "sk-test"}})

	_, err := d.send(context.Background(), stubProvider{url: srv.URL}, testMessages)

	var malformed *ports.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "stub", malformed.Provider)
}

func TestDispatcherTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	d := NewDispatcher(stubConfig{keys: map[string]string{"stub": "sk-test"}})

	_, err := d.send(context.Background(), stubProvider{url: srv.URL}, testMessages)

	require.Error(t, err)
	var apiErr *ports.APIError
	assert.False(t, errors.As(err, &apiErr), "transport failure is not an APIError")
}

func TestDispatcherContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDispatcher(stubConfig{keys: map[string]string{"stub": "sk-test"}})

	_, err := d.send(ctx, stubProvider{url: srv.URL}, testMessages)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
