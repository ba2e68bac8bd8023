package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/YUKIMIKAMI/diary-app/internal/assistant"
	"github.com/YUKIMIKAMI/diary-app/internal/config"
	"github.com/YUKIMIKAMI/diary-app/internal/platform/llm"
	"github.com/YUKIMIKAMI/diary-app/internal/platform/logger"
)

// defaultAssistant loads configuration and builds the configured backend.
// Logs go to stderr so command output stays clean.
func defaultAssistant(ctx context.Context) (Assistant, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(os.Stderr, cfg.Server.LogLevel)

	backend, err := llm.NewBackend(ctx, cfg.LLM, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM backend: %w", err)
	}

	a, err := assistant.New(backend, log, assistant.WithRequestTimeout(cfg.LLM.RequestTimeout()))
	if err != nil {
		return nil, err
	}
	return a, nil
}
