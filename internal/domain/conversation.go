package domain

import "fmt"

// Role identifies who authored a conversation turn.
type Role string

// Conversation roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one message of a consultation chat.
// Order matters: turns are replayed to the model chronologically.
type ConversationTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// IsUser reports whether the turn was written by the user. Any other role is
// treated as the assistant when history is replayed.
func (t ConversationTurn) IsUser() bool {
	return t.Role == RoleUser
}

// Validate checks that the turn has a known role and non-empty content.
// Inbound history (HTTP and CLI) must pass it; backends still accept any role
// and replay everything that is not RoleUser as the model.
func (t ConversationTurn) Validate() error {
	if t.Role != RoleUser && t.Role != RoleAssistant {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrInvalidRole, t.Role)
	}
	if t.Content == "" {
		return fmt.Errorf("%w: turn content: %w", ErrValidation, ErrEmptyContent)
	}
	return nil
}
