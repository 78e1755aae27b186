// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/reqlens/reqlens/internal/domain/entities"
)

// ChatCompleter is a mock implementation of ports.ChatCompleter.
type ChatCompleter struct {
	// Answer is returned on success.
	Answer string
	// Err is returned when set, instead of Answer.
	Err error

	// Captured inputs from the last call.
	Provider string
	Messages []entities.Message
}

// Complete returns the configured answer or error and records its inputs.
func (m *ChatCompleter) Complete(ctx context.Context, provider string, messages []entities.Message) (string, error) {
	m.Provider = provider
	m.Messages = messages
	if m.Err != nil {
		return "", m.Err
	}
	return m.Answer, nil
}
