package api

import (
	"fmt"

	"github.com/YUKIMIKAMI/diary-app/internal/domain"
)

// QuestionsRequest is the payload for POST /api/questions.
type QuestionsRequest struct {
	Content string `json:"content" validate:"required"`
}

// QuestionsResponse wraps the generated questions.
type QuestionsResponse struct {
	Questions []domain.Question `json:"questions"`
}

// EmotionRequest is the payload for POST /api/emotions.
type EmotionRequest struct {
	Text string `json:"text" validate:"required"`
}

// ChatRequest is the payload for POST /api/chat.
type ChatRequest struct {
	Message string                    `json:"message" validate:"required"`
	Context []domain.ConversationTurn `json:"context"`
}

// Validate checks every prior turn.
func (r ChatRequest) Validate() error {
	for i, turn := range r.Context {
		if err := turn.Validate(); err != nil {
			return fmt.Errorf("context[%d]: %w", i, err)
		}
	}
	return nil
}

// ChatResponse carries the counselor's reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// PromptRequest is the payload for POST /api/prompts. An empty body is allowed.
type PromptRequest struct {
	InitialInput string `json:"initial_input"`
}

// PromptResponse carries the writing prompt.
type PromptResponse struct {
	Prompt string `json:"prompt"`
}

// KeywordsRequest is the payload for POST /api/keywords. A missing or zero
// limit means the default; at most 50 keywords may be requested.
type KeywordsRequest struct {
	Text  string `json:"text"  validate:"required"`
	Limit int    `json:"limit" validate:"gte=0,lte=50"`
}

// KeywordsResponse wraps the extracted keywords.
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// AnalyzeEntryRequest is the payload for POST /api/entries/analyze.
type AnalyzeEntryRequest struct {
	Content string `json:"content" validate:"required"`
}
