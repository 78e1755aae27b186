package a

import "context"

type Message struct {
	Role    string
	Content string
}

type ChatCompleter interface {
	Complete(ctx context.Context, provider string, messages []Message) (string, error)
}

func bad(ctx context.Context, providers []string, c ChatCompleter, messages []Message) {
	for _, p := range providers {
		c.Complete(ctx, p, messages) // want "provider fan-out: Complete called inside loop"
	}
}

func good(ctx context.Context, c ChatCompleter, messages []Message) {
	// One provider selected up front, one call.
	c.Complete(ctx, "openai", messages)
}
