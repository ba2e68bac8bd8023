package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/YUKIMIKAMI/diary-app/internal/config"
	"github.com/YUKIMIKAMI/diary-app/internal/domain"
	"github.com/YUKIMIKAMI/diary-app/internal/generation"
)

// Backend implements generation.Backend using the Gemini API.
type Backend struct {
	logger      *slog.Logger
	client      *genai.Client
	model       string
	visionModel string
	config      *genai.GenerateContentConfig
}

// Compile-time check to ensure Backend implements generation.Backend
var _ generation.Backend = (*Backend)(nil)

// Option customizes the underlying genai client.
type Option func(*genai.ClientConfig)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(cc *genai.ClientConfig) {
		cc.HTTPOptions.BaseURL = baseURL
	}
}

// NewBackend creates a Gemini-backed generation.Backend. Both the text and
// the vision model handles share the same sampling and safety settings.
func NewBackend(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	settings generation.Settings,
	opts ...Option,
) (*Backend, error) {
	if logger == nil {
		return nil, fmt.Errorf("%w: logger cannot be nil", generation.ErrInvalidConfig)
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(clientConfig)
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create Gemini client",
			"error", err)
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	visionModel := cfg.VisionModelName
	if visionModel == "" {
		visionModel = cfg.ModelName
	}

	logger.InfoContext(ctx, "Gemini backend initialized",
		"model", cfg.ModelName,
		"vision_model", visionModel)

	return &Backend{
		logger:      logger,
		client:      client,
		model:       cfg.ModelName,
		visionModel: visionModel,
		config:      toGenerateContentConfig(settings),
	}, nil
}

// VisionModel returns the vision-capable model name. It is configured for
// image input but no operation sends images yet.
func (b *Backend) VisionModel() string {
	return b.visionModel
}

// Generate sends a single prompt and returns the raw response text.
func (b *Backend) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	b.logger.DebugContext(ctx, "Sending prompt to Gemini",
		"model", b.model,
		"prompt_length", len(prompt))

	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), b.config)
	if err != nil {
		b.logger.ErrorContext(ctx, "Gemini generate request failed",
			"model", b.model,
			"error", err)
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	return b.responseText(ctx, resp)
}

// Chat replays history as a Gemini chat session and sends message as the
// next user turn.
func (b *Backend) Chat(
	ctx context.Context,
	history []domain.ConversationTurn,
	message string,
) (string, error) {
	if message == "" {
		return "", ErrEmptyPrompt
	}

	chat, err := b.client.Chats.Create(ctx, b.model, b.config, toHistory(history))
	if err != nil {
		return "", fmt.Errorf("gemini chat: %w", err)
	}

	b.logger.DebugContext(ctx, "Sending chat message to Gemini",
		"model", b.model,
		"history_turns", len(history),
		"message_length", len(message))

	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		b.logger.ErrorContext(ctx, "Gemini chat request failed",
			"model", b.model,
			"error", err)
		return "", fmt.Errorf("gemini chat: %w", err)
	}

	return b.responseText(ctx, resp)
}

func (b *Backend) responseText(ctx context.Context, resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", generation.ErrEmptyResponse
	}

	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" &&
		fb.BlockReason != genai.BlockedReasonUnspecified {
		b.logger.WarnContext(ctx, "Gemini blocked the prompt",
			"block_reason", fb.BlockReason)
		return "", fmt.Errorf("%w: prompt blocked: %s", generation.ErrContentBlocked, fb.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", generation.ErrEmptyResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		b.logger.WarnContext(ctx, "Gemini stopped for safety reasons")
		return "", fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, genai.FinishReasonSafety)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no text in response", generation.ErrEmptyResponse)
	}

	return text, nil
}
