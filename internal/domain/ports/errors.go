package ports

import (
	"errors"
	"fmt"
)

// ErrUnknownProvider indicates the requested provider name is not in the
// registry. Maps to a 4xx at the transport boundary.
var ErrUnknownProvider = errors.New("unknown provider")

// MissingCredentialError indicates the provider is known but its API key is
// absent from configuration. Operator-actionable, not user-actionable.
type MissingCredentialError struct {
	Provider      string
	CredentialKey string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s API key not configured", e.Provider)
}

// APIError is a non-2xx answer from a provider. Message carries the
// provider's own error text when one could be decoded, otherwise a
// synthesized "request failed with status <code>".
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// MalformedResponseError indicates a 2xx provider response whose body did
// not match the provider's documented answer shape.
type MalformedResponseError struct {
	Provider string
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %s", e.Provider, e.Reason)
}
