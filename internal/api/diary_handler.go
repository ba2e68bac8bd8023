package api

import (
	"context"
	"net/http"

	"github.com/YUKIMIKAMI/diary-app/internal/api/shared"
	"github.com/YUKIMIKAMI/diary-app/internal/assistant"
	"github.com/YUKIMIKAMI/diary-app/internal/domain"
)

// Assistant is the subset of *assistant.Assistant the handlers depend on.
type Assistant interface {
	GenerateQuestions(ctx context.Context, diaryContent string) []domain.Question
	AnalyzeEmotion(ctx context.Context, text string) domain.EmotionAnalysis
	ChatConsultation(ctx context.Context, message string, history []domain.ConversationTurn) string
	InteractivePrompt(ctx context.Context, initialInput string) string
	ExtractKeywords(ctx context.Context, text string, limit int) []string
	AnalyzeEntry(ctx context.Context, content string) assistant.EntryInsights
}

var _ Assistant = (*assistant.Assistant)(nil)

// DiaryHandler serves the diary assistant endpoints.
type DiaryHandler struct {
	assistant Assistant
}

// NewDiaryHandler creates a new DiaryHandler.
func NewDiaryHandler(a Assistant) *DiaryHandler {
	return &DiaryHandler{assistant: a}
}

// GenerateQuestions handles POST /api/questions.
func (h *DiaryHandler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req QuestionsRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	questions := h.assistant.GenerateQuestions(r.Context(), req.Content)
	shared.RespondWithJSON(w, r, http.StatusOK, QuestionsResponse{Questions: questions})
}

// AnalyzeEmotion handles POST /api/emotions.
func (h *DiaryHandler) AnalyzeEmotion(w http.ResponseWriter, r *http.Request) {
	var req EmotionRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, h.assistant.AnalyzeEmotion(r.Context(), req.Text))
}

// Chat handles POST /api/chat.
func (h *DiaryHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	reply := h.assistant.ChatConsultation(r.Context(), req.Message, req.Context)
	shared.RespondWithJSON(w, r, http.StatusOK, ChatResponse{Response: reply})
}

// InteractivePrompt handles POST /api/prompts. The body may be omitted.
func (h *DiaryHandler) InteractivePrompt(w http.ResponseWriter, r *http.Request) {
	var req PromptRequest
	if !decodeAndValidate(w, r, &req, true) {
		return
	}

	prompt := h.assistant.InteractivePrompt(r.Context(), req.InitialInput)
	shared.RespondWithJSON(w, r, http.StatusOK, PromptResponse{Prompt: prompt})
}

// ExtractKeywords handles POST /api/keywords.
func (h *DiaryHandler) ExtractKeywords(w http.ResponseWriter, r *http.Request) {
	var req KeywordsRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	keywords := h.assistant.ExtractKeywords(r.Context(), req.Text, req.Limit)
	shared.RespondWithJSON(w, r, http.StatusOK, KeywordsResponse{Keywords: keywords})
}

// AnalyzeEntry handles POST /api/entries/analyze.
func (h *DiaryHandler) AnalyzeEntry(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeEntryRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, h.assistant.AnalyzeEntry(r.Context(), req.Content))
}
