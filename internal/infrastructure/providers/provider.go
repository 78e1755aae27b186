// Package providers implements the LLM provider registry and the HTTP
// dispatch layer that drives five structurally different provider APIs
// through one uniform call.
package providers

import (
	"sort"
	"strings"

	"github.com/reqlens/reqlens/internal/domain/entities"
)

// defaultMaxTokens caps the answer length requested from providers whose
// wire protocol requires or accepts a token limit.
const defaultMaxTokens = 4096

// Provider describes one LLM backend: how to address it, authenticate to
// it, shape its request payload, and pull the answer text out of its
// response envelope. Implementations are stateless values; adding a
// provider means adding one implementation and one registry entry, never
// touching dispatch logic.
type Provider interface {
	// Name is the unique registry key.
	Name() string
	// DefaultModel is used when no model override is configured.
	DefaultModel() string
	// CredentialKey names the environment variable holding the API key.
	CredentialKey() string
	// RequestURL builds the endpoint URL. Only Gemini uses the apiKey
	// here (as a query parameter); the others authenticate via headers.
	RequestURL(model string, apiKey string) string
	// Headers builds the request headers for the given credential.
	Headers(apiKey string) map[string]string
	// Body builds the provider-native request payload.
	Body(model string, messages []entities.Message) any
	// ExtractAnswer pulls the raw answer text out of a 2xx response body.
	// Every lookup is guarded; providers return varying shapes on error.
	ExtractAnswer(raw []byte) (string, error)
}

var registry = map[string]Provider{
	"openai":    openAIProvider{},
	"anthropic": anthropicProvider{},
	"gemini":    geminiProvider{},
	"mistral":   mistralProvider{},
	"cohere":    cohereProvider{},
}

// Lookup returns the descriptor for a provider name. Matching is
// case-insensitive.
func Lookup(name string) (Provider, bool) {
	p, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Names returns all registered provider names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
