package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/reqlens/reqlens/internal/domain/entities"
	"github.com/reqlens/reqlens/internal/domain/ports"
)

// Configurer is the slice of configuration the dispatcher needs.
// Satisfied by *config.Config.
type Configurer interface {
	Credential(provider string, envKey string) string
	Model(provider string) string
}

// Dispatcher implements ports.ChatCompleter over the provider registry.
// One POST per call, no retries, no caching; credentials are resolved
// fresh on every call.
type Dispatcher struct {
	cfg    Configurer
	client *http.Client
}

// NewDispatcher creates a dispatcher backed by the given configuration.
// The HTTP client carries no overall timeout; callers bound the call via
// the request context.
func NewDispatcher(cfg Configurer) *Dispatcher {
	return &Dispatcher{cfg: cfg, client: &http.Client{}}
}

// Complete sends the messages to the named provider and returns the
// trimmed answer text.
func (d *Dispatcher) Complete(ctx context.Context, name string, messages []entities.Message) (string, error) {
	provider, ok := Lookup(name)
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ports.ErrUnknownProvider)
	}
	return d.send(ctx, provider, messages)
}

func (d *Dispatcher) send(ctx context.Context, provider Provider, messages []entities.Message) (string, error) {
	apiKey := d.cfg.Credential(provider.Name(), provider.CredentialKey())
	if apiKey == "" {
		return "", &ports.MissingCredentialError{
			Provider:      provider.Name(),
			CredentialKey: provider.CredentialKey(),
		}
	}

	model := d.cfg.Model(provider.Name())
	if model == "" {
		model = provider.DefaultModel()
	}

	payload, err := json.Marshal(provider.Body(model, messages))
	if err != nil {
		return "", fmt.Errorf("encoding %s request: %w", provider.Name(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, provider.RequestURL(model, apiKey), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating %s request: %w", provider.Name(), err)
	}
	for key, value := range provider.Headers(apiKey) {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", provider.Name(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s response: %w", provider.Name(), err)
	}

	slog.Debug("provider call completed",
		"provider", provider.Name(),
		"model", model,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ports.APIError{
			Provider:   provider.Name(),
			StatusCode: resp.StatusCode,
			Message:    providerErrorMessage(body, resp.StatusCode),
		}
	}

	answer, err := provider.ExtractAnswer(body)
	if err != nil {
		return "", &ports.MalformedResponseError{
			Provider: provider.Name(),
			Reason:   err.Error(),
		}
	}

	return strings.TrimSpace(answer), nil
}

// providerErrorMessage digs the provider's own error text out of a non-2xx
// body. Providers disagree on the envelope: most nest it under "error",
// Cohere puts it at the top level. Falls back to a synthesized message.
func providerErrorMessage(body []byte, status int) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error.Message != "" {
			return envelope.Error.Message
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}

	return fmt.Sprintf("request failed with status %d", status)
}
