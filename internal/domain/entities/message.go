package entities

// Role identifies the sender of a chat message.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged entry in the prompt sent to a provider.
// Order is semantically meaningful: the system message establishes
// instructions, the user message carries the payload. Messages are
// immutable once built.
type Message struct {
	Role    Role
	Content string
}
