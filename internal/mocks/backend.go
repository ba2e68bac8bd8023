package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/YUKIMIKAMI/diary-app/internal/domain"
	"github.com/YUKIMIKAMI/diary-app/internal/generation"
)

// MockBackend implements generation.Backend on testify/mock.
type MockBackend struct {
	mock.Mock
}

var _ generation.Backend = (*MockBackend)(nil)

func (m *MockBackend) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) Chat(ctx context.Context, history []domain.ConversationTurn, message string) (string, error) {
	args := m.Called(ctx, history, message)
	return args.String(0), args.Error(1)
}
