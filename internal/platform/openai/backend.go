package openai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	openai "github.com/sashabaranov/go-openai"

	"github.com/YUKIMIKAMI/diary-app/internal/config"
	"github.com/YUKIMIKAMI/diary-app/internal/domain"
	"github.com/YUKIMIKAMI/diary-app/internal/generation"
)

// Backend implements generation.Backend on an OpenAI-compatible chat
// completions endpoint.
type Backend struct {
	logger   *slog.Logger
	client   *openai.Client
	model    string
	settings generation.Settings

	counterOnce sync.Once
	counter     TokenCounter
	loadCounter func(model string) (TokenCounter, error)
}

var _ generation.Backend = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

// WithTokenCounter replaces the lazily loaded tiktoken counter used for
// context-window warnings.
func WithTokenCounter(counter TokenCounter) Option {
	return func(b *Backend) {
		b.loadCounter = func(string) (TokenCounter, error) { return counter, nil }
	}
}

// NewBackend creates an OpenAI-backed generation.Backend.
func NewBackend(
	logger *slog.Logger,
	cfg config.LLMConfig,
	settings generation.Settings,
	opts ...Option,
) (*Backend, error) {
	if logger == nil {
		return nil, fmt.Errorf("%w: logger cannot be nil", generation.ErrInvalidConfig)
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: %w", generation.ErrInvalidConfig, generation.ErrMissingCredential)
	}
	if cfg.OpenAIModel == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}

	b := &Backend{
		logger:      logger,
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.OpenAIModel,
		settings:    settings,
		loadCounter: NewTiktokenCounter,
	}
	for _, opt := range opts {
		opt(b)
	}

	logger.Info("OpenAI backend initialized",
		"model", b.model,
		"base_url", clientConfig.BaseURL)

	return b, nil
}

// Generate sends prompt as a single user message.
func (b *Backend) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	return b.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	})
}

// Chat sends history followed by message as the next user turn.
func (b *Backend) Chat(
	ctx context.Context,
	history []domain.ConversationTurn,
	message string,
) (string, error) {
	if message == "" {
		return "", ErrEmptyPrompt
	}

	messages := toMessages(history)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	return b.complete(ctx, messages)
}

func (b *Backend) tokenCounter(ctx context.Context) TokenCounter {
	b.counterOnce.Do(func() {
		counter, err := b.loadCounter(b.model)
		if err != nil {
			b.logger.WarnContext(ctx, "Token counter unavailable, context-window warnings disabled",
				"model", b.model,
				"error", err)
			return
		}
		b.counter = counter
	})
	return b.counter
}

func (b *Backend) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	maxTokens := int(b.settings.MaxOutputTokens)

	if overflow, used := contextOverflow(b.tokenCounter(ctx), b.model, maxTokens, messages); overflow {
		b.logger.WarnContext(ctx, "Prompt leaves less than the output allowance in the context window",
			"model", b.model,
			"prompt_tokens", used,
			"max_tokens", maxTokens,
			"context_window", contextWindow(b.model))
	}

	b.logger.DebugContext(ctx, "Sending chat completion request",
		"model", b.model,
		"messages", len(messages),
		"max_tokens", maxTokens)

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       b.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: b.settings.Temperature,
		TopP:        b.settings.TopP,
	})
	if err != nil {
		b.logger.ErrorContext(ctx, "OpenAI request failed",
			"model", b.model,
			"error", err)
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", generation.ErrEmptyResponse)
	}

	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonContentFilter {
		b.logger.WarnContext(ctx, "OpenAI content filter triggered",
			"model", b.model)
		return "", fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, choice.FinishReason)
	}

	if choice.Message.Content == "" {
		return "", fmt.Errorf("%w: no text in response", generation.ErrEmptyResponse)
	}

	return choice.Message.Content, nil
}

func toMessages(turns []domain.ConversationTurn) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns)+1)
	for _, turn := range turns {
		role := openai.ChatMessageRoleAssistant
		if turn.IsUser() {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Content,
		})
	}
	return messages
}
