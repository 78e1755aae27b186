package providers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/reqlens/reqlens/internal/domain/entities"
)

const (
	anthropicEndpoint = "https://api.anthropic.com/v1/messages"
	anthropicVersion  = "2023-06-01"
)

// anthropicProvider speaks the Anthropic Messages API. The protocol has no
// system role: any system-role message is pulled out of the list and sent
// in the dedicated top-level system field.
type anthropicProvider struct{}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
	MaxTokens int                `json:"max_tokens"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
}

func (anthropicProvider) Name() string          { return "anthropic" }
func (anthropicProvider) DefaultModel() string  { return "claude-3-5-haiku-20241022" }
func (anthropicProvider) CredentialKey() string { return "ANTHROPIC_API_KEY" }

func (anthropicProvider) RequestURL(model string, apiKey string) string {
	return anthropicEndpoint
}

func (anthropicProvider) Headers(apiKey string) map[string]string {
	return map[string]string{
		"Content-Type":      "application/json",
		"x-api-key":         apiKey,
		"anthropic-version": anthropicVersion,
	}
}

func (anthropicProvider) Body(model string, messages []entities.Message) any {
	req := anthropicRequest{
		Model:     model,
		MaxTokens: defaultMaxTokens,
	}

	for _, m := range messages {
		if m.Role == entities.RoleSystem {
			req.System = m.Content
			continue
		}
		req.Messages = append(req.Messages, anthropicMessage{
			Role:    string(entities.RoleUser),
			Content: m.Content,
		})
	}

	return req
}

func (anthropicProvider) ExtractAnswer(raw []byte) (string, error) {
	var resp anthropicResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decoding messages response: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", errors.New("response has no content blocks")
	}
	return resp.Content[0].Text, nil
}
