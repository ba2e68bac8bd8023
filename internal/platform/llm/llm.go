// Package llm selects the generation.Backend implementation for the
// configured provider.
package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/YUKIMIKAMI/diary-app/internal/config"
	"github.com/YUKIMIKAMI/diary-app/internal/generation"
	"github.com/YUKIMIKAMI/diary-app/internal/platform/gemini"
	"github.com/YUKIMIKAMI/diary-app/internal/platform/openai"
)

// NewBackend builds the backend for cfg.Provider. An empty provider means Gemini.
func NewBackend(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Backend, error) {
	settings := generation.DefaultSettings()

	switch cfg.Provider {
	case config.ProviderGemini, "":
		b, err := gemini.NewBackend(ctx, logger, cfg, settings)
		if err != nil {
			return nil, err
		}
		return b, nil
	case config.ProviderOpenAI:
		b, err := openai.NewBackend(logger, cfg, settings)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}
