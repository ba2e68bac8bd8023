package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// Supported LLM providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// LLMConfig contains all LLM integration related settings.
// Sampling and safety settings are compiled in (see generation.DefaultSettings)
// and are deliberately not configurable here.
type LLMConfig struct {
	Provider string `mapstructure:"provider" validate:"required,oneof=gemini openai"`

	GeminiAPIKey    string `mapstructure:"gemini_api_key" validate:"required_if=Provider gemini"`
	ModelName       string `mapstructure:"model_name" validate:"required_if=Provider gemini"`
	VisionModelName string `mapstructure:"vision_model_name"`

	OpenAIAPIKey  string `mapstructure:"openai_api_key" validate:"required_if=Provider openai"`
	OpenAIModel   string `mapstructure:"openai_model" validate:"required_if=Provider openai"`
	OpenAIBaseURL string `mapstructure:"openai_base_url" validate:"omitempty,url"`

	// RequestTimeoutSeconds bounds each backend call. Zero means no timeout.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`
}

// RequestTimeout returns the per-call timeout, or zero when none is configured.
func (c LLMConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
