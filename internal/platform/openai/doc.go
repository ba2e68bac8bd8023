// Package openai implements generation.Backend on OpenAI-compatible chat
// completion endpoints using github.com/sashabaranov/go-openai.
//
// Every request carries the same temperature, top-p and max_tokens taken from
// generation.Settings. The chat completions API has no top-k parameter and no
// per-request harm-category thresholds, so those two parts of the settings are
// not sent; provider-side filtering surfaces only through the content_filter
// finish reason, which maps to generation.ErrContentBlocked.
//
// Prompt size is measured with github.com/pkoukk/tiktoken-go and a warning is
// logged when the prompt and the output allowance overflow the model's context
// window. The request itself is never altered.
package openai
