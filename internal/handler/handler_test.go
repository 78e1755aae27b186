package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqlens/reqlens/internal/domain/mocks"
	"github.com/reqlens/reqlens/internal/domain/ports"
	"github.com/reqlens/reqlens/internal/domain/services"
)

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAnalyze_Success(t *testing.T) {
	completer := &mocks.ChatCompleter{
		Answer: `{"constraints": [{"id": "c1", "text": "Books must have a title", "sourceStart": 0, "sourceEnd": 24}], "redundantGroups": [], "contradictions": [], "originalText": "Books must have a title."}`,
	}
	h := Analyze(services.NewAnalysisService(completer))

	w := postJSON(t, h, `{"providerName": "openai", "inputText": "Books must have a title."}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	body := decodeBody(t, w)
	constraints := body["constraints"].([]any)
	require.Len(t, constraints, 1)
	assert.Equal(t, "Books must have a title", constraints[0].(map[string]any)["text"])
	assert.Equal(t, "Books must have a title.", body["originalText"])
}

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	h := Analyze(services.NewAnalysisService(&mocks.ChatCompleter{}))

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/", nil)
		w := httptest.NewRecorder()
		h(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		assert.Contains(t, decodeBody(t, w), "error")
	}
}

func TestAnalyze_InvalidJSONBody(t *testing.T) {
	h := Analyze(services.NewAnalysisService(&mocks.ChatCompleter{}))

	w := postJSON(t, h, `{"providerName": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid JSON body", decodeBody(t, w)["error"])
}

func TestAnalyze_UnknownProvider(t *testing.T) {
	completer := &mocks.ChatCompleter{
		Err: fmt.Errorf("%q: %w", "FooAI", ports.ErrUnknownProvider),
	}
	h := Analyze(services.NewAnalysisService(completer))

	w := postJSON(t, h, `{"providerName": "FooAI", "inputText": "text"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid provider", decodeBody(t, w)["error"])
}

func TestAnalyze_MissingCredential(t *testing.T) {
	completer := &mocks.ChatCompleter{
		Err: &ports.MissingCredentialError{Provider: "anthropic", CredentialKey: "ANTHROPIC_API_KEY"},
	}
	h := Analyze(services.NewAnalysisService(completer))

	w := postJSON(t, h, `{"providerName": "anthropic", "inputText": "text"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "anthropic API key not configured", decodeBody(t, w)["error"])
}

func TestAnalyze_ProviderErrorKeepsResultShape(t *testing.T) {
	completer := &mocks.ChatCompleter{
		Err: &ports.APIError{Provider: "openai", StatusCode: 429, Message: "rate limited"},
	}
	h := Analyze(services.NewAnalysisService(completer))

	w := postJSON(t, h, `{"providerName": "openai", "inputText": "the input"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "openai: rate limited", body["error"])

	// The four AnalysisResult fields stay present even on failure.
	for _, field := range []string{"constraints", "redundantGroups", "contradictions", "originalText"} {
		assert.Contains(t, body, field)
	}
	assert.Equal(t, "the input", body["originalText"])
	assert.Empty(t, body["constraints"])
}

func TestAnalyze_ProseAnswerIsNotAnError(t *testing.T) {
	completer := &mocks.ChatCompleter{Answer: "No JSON here, just thoughts."}
	h := Analyze(services.NewAnalysisService(completer))

	w := postJSON(t, h, `{"providerName": "openai", "inputText": "the input"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.NotContains(t, body, "error")
	assert.Empty(t, body["constraints"])
	assert.Empty(t, body["redundantGroups"])
	assert.Empty(t, body["contradictions"])
	assert.Equal(t, "the input", body["originalText"])
}

func TestExtract_Success(t *testing.T) {
	completer := &mocks.ChatCompleter{
		Answer: "- Books must have a title\n- Books must have a title and author",
	}
	h := Extract(services.NewAnalysisService(completer))

	w := postJSON(t, h, `{"providerName": "openai", "inputText": "Books must have a title. Books must have a title and author."}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Constraints []struct {
			Text string `json:"text"`
		} `json:"constraints"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Constraints, 2)
	assert.Equal(t, "Books must have a title", body.Constraints[0].Text)
	assert.Equal(t, "Books must have a title and author", body.Constraints[1].Text)
}

func TestExtract_MethodNotAllowed(t *testing.T) {
	h := Extract(services.NewAnalysisService(&mocks.ChatCompleter{}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestAnalyze_MissingProviderName(t *testing.T) {
	h := Analyze(services.NewAnalysisService(&mocks.ChatCompleter{}))

	w := postJSON(t, h, `{"inputText": "text"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "providerName is required", decodeBody(t, w)["error"])
}

type stubConfigurer map[string]string

func (s stubConfigurer) Credential(provider string, envKey string) string { return s[provider] }

func (s stubConfigurer) Model(provider string) string { return "" }

func TestProviders_List(t *testing.T) {
	h := Providers(stubConfigurer{"openai": "sk-test"})

	req := httptest.NewRequest(http.MethodGet, "/api/providers", nil)
	w := httptest.NewRecorder()
	h(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var infos []struct {
		Name         string `json:"name"`
		DefaultModel string `json:"defaultModel"`
		Configured   bool   `json:"configured"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	require.Len(t, infos, 5)

	byName := map[string]bool{}
	for _, info := range infos {
		assert.NotEmpty(t, info.DefaultModel)
		byName[info.Name] = info.Configured
	}
	assert.True(t, byName["openai"])
	assert.False(t, byName["anthropic"])
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	Health()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}
