package generation

import "errors"

// Common errors returned by the generation package and its backends.
var (
	// ErrInvalidConfig is returned when a backend is constructed with invalid configuration.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrMissingCredential is returned when no API key is available at construction time.
	ErrMissingCredential = errors.New("API key is not configured")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrEmptyResponse is returned when the LLM produced no candidates or no text.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrContentBlocked is returned when the provider's safety filters blocked the prompt or answer.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")
)
