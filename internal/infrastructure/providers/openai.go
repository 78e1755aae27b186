package providers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/reqlens/reqlens/internal/domain/entities"
)

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

// openAIProvider speaks the OpenAI chat-completions protocol. The request
// and response payloads reuse the go-openai wire types; transport stays
// with the dispatcher so every provider is driven the same way.
type openAIProvider struct{}

func (openAIProvider) Name() string          { return "openai" }
func (openAIProvider) DefaultModel() string  { return "gpt-4o-mini" }
func (openAIProvider) CredentialKey() string { return "OPENAI_API_KEY" }

func (openAIProvider) RequestURL(model string, apiKey string) string {
	return openAIEndpoint
}

func (openAIProvider) Headers(apiKey string) map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + apiKey,
	}
}

func (openAIProvider) Body(model string, messages []entities.Message) any {
	return openai.ChatCompletionRequest{
		Model:       model,
		Messages:    toChatMessages(messages),
		MaxTokens:   defaultMaxTokens,
		Temperature: 0.1,
	}
}

func (openAIProvider) ExtractAnswer(raw []byte) (string, error) {
	return extractChatAnswer(raw)
}

// toChatMessages converts domain messages to the OpenAI role/content list.
// Shared with the Mistral provider, whose API is OpenAI-compatible.
func toChatMessages(messages []entities.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		if m.Role == entities.RoleSystem {
			role = openai.ChatMessageRoleSystem
		}
		out = append(out, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return out
}

// extractChatAnswer pulls the answer out of an OpenAI-shaped completion
// response.
func extractChatAnswer(raw []byte) (string, error) {
	var resp openai.ChatCompletionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decoding completion response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
