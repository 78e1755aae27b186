// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/reqlens/reqlens/internal/domain/entities"
)

// ChatCompleter sends a prompt to a named LLM provider and returns the
// model's raw text answer. Exactly one provider is called per request;
// implementations perform a single attempt with no retries.
type ChatCompleter interface {
	// Complete dispatches the messages to the provider identified by name
	// and returns the trimmed answer text.
	Complete(ctx context.Context, provider string, messages []entities.Message) (string, error)
}
