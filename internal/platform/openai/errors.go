package openai

import "errors"

var (
	// ErrEmptyPrompt is returned when a prompt or chat message is empty.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)
