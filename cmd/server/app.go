package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/YUKIMIKAMI/diary-app/internal/assistant"
	"github.com/YUKIMIKAMI/diary-app/internal/config"
	"github.com/YUKIMIKAMI/diary-app/internal/generation"
	"github.com/YUKIMIKAMI/diary-app/internal/platform/llm"
)

// application holds the shared dependencies of the server.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	assistant *assistant.Assistant
}

// newApplication wires the configured LLM backend into an assistant.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	backend, err := llm.NewBackend(ctx, cfg.LLM, logger.With("component", "llm_backend"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM backend: %w", err)
	}

	return newApplicationWithBackend(cfg, logger, backend)
}

// newApplicationWithBackend builds the application around an existing backend.
func newApplicationWithBackend(
	cfg *config.Config,
	logger *slog.Logger,
	backend generation.Backend,
) (*application, error) {
	a, err := assistant.New(backend, logger,
		assistant.WithRequestTimeout(cfg.LLM.RequestTimeout()))
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant: %w", err)
	}

	logger.Info("Application initialized successfully",
		"provider", cfg.LLM.Provider,
		"request_timeout", cfg.LLM.RequestTimeout().String())

	return &application{
		config:    cfg,
		logger:    logger,
		assistant: a,
	}, nil
}

// Run serves HTTP until ctx is canceled or the process receives SIGINT/SIGTERM.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
