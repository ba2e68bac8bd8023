package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/YUKIMIKAMI/diary-app/internal/config"
	"github.com/YUKIMIKAMI/diary-app/internal/generation"
)

// validateConfig checks the settings the backend cannot run without. It runs
// before any client is created, so a missing credential never reaches the network.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key",
			"error", "GeminiAPIKey is empty")
		return fmt.Errorf("%w: %w", generation.ErrInvalidConfig, generation.ErrMissingCredential)
	}

	if cfg.ModelName == "" {
		logger.ErrorContext(ctx, "Missing Gemini model name",
			"error", "ModelName is empty")
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.VisionModelName == "" {
		logger.WarnContext(ctx, "Vision model name not set",
			"action", "using text model name")
	}

	return nil
}
