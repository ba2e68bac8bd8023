package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/YUKIMIKAMI/diary-app/internal/domain"
	"github.com/YUKIMIKAMI/diary-app/internal/generation"
	"github.com/YUKIMIKAMI/diary-app/internal/redact"
)

// ErrNilDependency is returned by New when a required dependency is missing.
var ErrNilDependency = errors.New("required dependency is nil")

// Assistant runs the diary companion operations against a generation.Backend.
type Assistant struct {
	backend generation.Backend
	logger  *slog.Logger
	picker  Picker
	timeout time.Duration
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithPicker replaces the random source used to choose opening prompts.
func WithPicker(p Picker) Option {
	return func(a *Assistant) {
		if p != nil {
			a.picker = p
		}
	}
}

// WithRequestTimeout bounds every backend call. Zero or negative disables the bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(a *Assistant) {
		a.timeout = d
	}
}

// New creates an Assistant.
func New(backend generation.Backend, logger *slog.Logger, opts ...Option) (*Assistant, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: backend", ErrNilDependency)
	}
	if logger == nil {
		return nil, fmt.Errorf("%w: logger", ErrNilDependency)
	}

	a := &Assistant{
		backend: backend,
		logger:  logger.With("component", "assistant"),
		picker:  randomPicker{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// GenerateQuestions asks for reflective questions about a diary entry.
// The number of returned questions is whatever the model produced.
func (a *Assistant) GenerateQuestions(ctx context.Context, diaryContent string) []domain.Question {
	const op = "generate_questions"

	text, err := a.generate(ctx, questionsPrompt(diaryContent))
	if err != nil {
		a.logFallback(ctx, op, err)
		return FallbackQuestions()
	}

	var questions []domain.Question
	if err := generation.ExtractJSON(text, &questions); err != nil {
		a.logFallback(ctx, op, err)
		return FallbackQuestions()
	}

	a.logger.DebugContext(ctx, "Generated questions", "count", len(questions))
	return questions
}

// AnalyzeEmotion scores text against the seven emotion labels.
func (a *Assistant) AnalyzeEmotion(ctx context.Context, text string) domain.EmotionAnalysis {
	const op = "analyze_emotion"

	resp, err := a.generate(ctx, emotionPrompt(text))
	if err != nil {
		a.logFallback(ctx, op, err)
		return FallbackEmotionAnalysis()
	}

	var analysis domain.EmotionAnalysis
	if err := generation.ExtractJSON(resp, &analysis); err != nil {
		a.logFallback(ctx, op, err)
		return FallbackEmotionAnalysis()
	}

	return analysis
}

// ChatConsultation continues a counseling conversation. history is replayed in
// order and message is sent as the next user turn, prefixed with the counselor
// persona. The reply is returned verbatim.
func (a *Assistant) ChatConsultation(
	ctx context.Context,
	message string,
	history []domain.ConversationTurn,
) string {
	const op = "chat_consultation"

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	reply, err := a.backend.Chat(ctx, history, chatMessage(message))
	if err == nil && reply == "" {
		err = generation.ErrEmptyResponse
	}
	if err != nil {
		a.logFallback(ctx, op, err)
		return FallbackChatResponse
	}

	return reply
}

// InteractivePrompt returns a writing prompt. Without initial input one of the
// OpeningPrompts is chosen and the backend is not called. Otherwise the model
// is asked for a single follow-up question about the input.
func (a *Assistant) InteractivePrompt(ctx context.Context, initialInput string) string {
	const op = "interactive_prompt"

	if initialInput == "" {
		return OpeningPrompts[a.picker.Pick(len(OpeningPrompts))]
	}

	text, err := a.generate(ctx, followUpPrompt(initialInput))
	if err == nil {
		text = strings.TrimSpace(text)
		if text == "" {
			err = generation.ErrEmptyResponse
		}
	}
	if err != nil {
		a.logFallback(ctx, op, err)
		return FallbackFollowUpQuestion
	}

	return text
}

// ExtractKeywords returns at most limit keywords from text. A limit below 1
// means DefaultKeywordLimit. On failure the result is empty, never nil.
func (a *Assistant) ExtractKeywords(ctx context.Context, text string, limit int) []string {
	const op = "extract_keywords"

	if limit < 1 {
		limit = DefaultKeywordLimit
	}

	resp, err := a.generate(ctx, keywordsPrompt(text, limit))
	if err != nil {
		a.logFallback(ctx, op, err)
		return []string{}
	}

	var keywords []string
	if err := generation.ExtractJSON(resp, &keywords); err != nil {
		a.logFallback(ctx, op, err)
		return []string{}
	}

	if len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}

// EntryInsights bundles the analyses produced for a saved diary entry.
type EntryInsights struct {
	Questions []domain.Question      `json:"questions"`
	Emotion   domain.EmotionAnalysis `json:"emotion"`
	Keywords  []string               `json:"keywords"`
}

// AnalyzeEntry generates questions, emotion analysis and keywords for a diary
// entry concurrently. Each part degrades to its own fallback independently.
func (a *Assistant) AnalyzeEntry(ctx context.Context, content string) EntryInsights {
	var (
		insights EntryInsights
		wg       sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		insights.Questions = a.GenerateQuestions(ctx, content)
	}()
	go func() {
		defer wg.Done()
		insights.Emotion = a.AnalyzeEmotion(ctx, content)
	}()
	go func() {
		defer wg.Done()
		insights.Keywords = a.ExtractKeywords(ctx, content, DefaultKeywordLimit)
	}()
	wg.Wait()

	return insights
}

// generate sends a one-shot prompt and treats an empty reply as a failure.
func (a *Assistant) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	text, err := a.backend.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", generation.ErrEmptyResponse
	}
	return text, nil
}

func (a *Assistant) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout > 0 {
		return context.WithTimeout(ctx, a.timeout)
	}
	return ctx, func() {}
}

func (a *Assistant) logFallback(ctx context.Context, op string, err error) {
	a.logger.ErrorContext(ctx, "Operation failed, returning fallback",
		"operation", op,
		"error", redact.Error(err))
}
