package providers

import (
	"github.com/sashabaranov/go-openai"

	"github.com/reqlens/reqlens/internal/domain/entities"
)

const mistralEndpoint = "https://api.mistral.ai/v1/chat/completions"

// mistralProvider speaks Mistral's chat API, which is OpenAI-compatible on
// the wire; it shares the go-openai payload types with openAIProvider and
// differs only in endpoint, credential, and default model.
type mistralProvider struct{}

func (mistralProvider) Name() string          { return "mistral" }
func (mistralProvider) DefaultModel() string  { return "mistral-small-latest" }
func (mistralProvider) CredentialKey() string { return "MISTRAL_API_KEY" }

func (mistralProvider) RequestURL(model string, apiKey string) string {
	return mistralEndpoint
}

func (mistralProvider) Headers(apiKey string) map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + apiKey,
	}
}

func (mistralProvider) Body(model string, messages []entities.Message) any {
	return openai.ChatCompletionRequest{
		Model:       model,
		Messages:    toChatMessages(messages),
		MaxTokens:   defaultMaxTokens,
		Temperature: 0.1,
	}
}

func (mistralProvider) ExtractAnswer(raw []byte) (string, error) {
	return extractChatAnswer(raw)
}
