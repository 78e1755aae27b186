package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/reqlens/reqlens/internal/domain/entities"
)

const geminiEndpointTemplate = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// geminiProvider speaks the Google generateContent API. Two quirks: the
// API key travels in the URL query string, not a header, and the entire
// message history is flattened into a single text blob in one part.
type geminiProvider struct{}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (geminiProvider) Name() string          { return "gemini" }
func (geminiProvider) DefaultModel() string  { return "gemini-1.5-flash" }
func (geminiProvider) CredentialKey() string { return "GEMINI_API_KEY" }

func (geminiProvider) RequestURL(model string, apiKey string) string {
	return fmt.Sprintf(geminiEndpointTemplate, url.PathEscape(model), url.QueryEscape(apiKey))
}

func (geminiProvider) Headers(apiKey string) map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
	}
}

func (geminiProvider) Body(model string, messages []entities.Message) any {
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		parts = append(parts, m.Content)
	}

	return geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: strings.Join(parts, "\n\n")}}},
		},
		GenerationConfig: geminiGenerationConfig{MaxOutputTokens: defaultMaxTokens},
	}
}

func (geminiProvider) ExtractAnswer(raw []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decoding generateContent response: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("response has no candidates")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("first candidate has no parts")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
