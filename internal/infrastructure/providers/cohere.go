package providers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/reqlens/reqlens/internal/domain/entities"
)

const cohereEndpoint = "https://api.cohere.ai/v1/chat"

// cohereProvider speaks the Cohere v1 chat API, which takes only the
// single most-recent user message plus an optional preamble; earlier turns
// are discarded. Any system message becomes the preamble.
type cohereProvider struct{}

type cohereRequest struct {
	Model     string `json:"model"`
	Message   string `json:"message"`
	Preamble  string `json:"preamble,omitempty"`
	MaxTokens int    `json:"max_tokens"`
}

type cohereResponse struct {
	Text *string `json:"text"`
}

func (cohereProvider) Name() string          { return "cohere" }
func (cohereProvider) DefaultModel() string  { return "command-r" }
func (cohereProvider) CredentialKey() string { return "COHERE_API_KEY" }

func (cohereProvider) RequestURL(model string, apiKey string) string {
	return cohereEndpoint
}

func (cohereProvider) Headers(apiKey string) map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + apiKey,
	}
}

func (cohereProvider) Body(model string, messages []entities.Message) any {
	req := cohereRequest{
		Model:     model,
		MaxTokens: defaultMaxTokens,
	}

	for _, m := range messages {
		switch m.Role {
		case entities.RoleSystem:
			if req.Preamble == "" {
				req.Preamble = m.Content
			}
		case entities.RoleUser:
			// Later user turns win; only the most recent is sent.
			req.Message = m.Content
		}
	}

	return req
}

func (cohereProvider) ExtractAnswer(raw []byte) (string, error) {
	var resp cohereResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decoding chat response: %w", err)
	}
	if resp.Text == nil {
		return "", errors.New("response has no text field")
	}
	return *resp.Text, nil
}
