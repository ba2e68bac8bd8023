package generation

import (
	"context"

	"github.com/YUKIMIKAMI/diary-app/internal/domain"
)

// Backend is a generative-text provider. Each method performs exactly one
// outbound call and reports the outcome as text or an error; it never retries.
type Backend interface {
	// Generate sends a single prompt and returns the model's text.
	Generate(ctx context.Context, prompt string) (string, error)

	// Chat starts a session seeded with history, sends message as the next
	// user turn and returns the model's reply. History order is preserved.
	Chat(ctx context.Context, history []domain.ConversationTurn, message string) (string, error)
}
