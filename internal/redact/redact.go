// Package redact removes credentials and personal data from strings before
// they are logged. Provider SDK errors can echo request URLs, headers or the
// API key itself, and diary text must not leak into logs through them.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules are applied in order; provider key formats run before the generic
// parameter rule so the parameter name survives.
var rules = []rule{
	{
		// Google API keys
		pattern:     regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`),
		replacement: RedactedKeyPlaceholder,
	},
	{
		// OpenAI-style secret keys, including project keys
		pattern:     regexp.MustCompile(`\bsk-[A-Za-z0-9_\-]{16,}`),
		replacement: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(bearer)\s+[A-Za-z0-9_\-.~+/=]{8,}`),
		replacement: "${1} " + RedactedCredentialPlaceholder,
	},
	{
		// key=..., api_key=..., token=... in query strings and messages
		pattern:     regexp.MustCompile(`(?i)\b(api[_-]?key|key|token|secret|password)=[^&\s"']+`),
		replacement: "${1}=" + RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		replacement: RedactedEmailPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
