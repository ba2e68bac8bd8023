package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// jsonFenceOpen is the only opening fence that is recognised. Other fence
	// languages (or a bare ```) are left in place and fail to parse.
	jsonFenceOpen = "```json"
	fenceClose    = "```"
)

// StripFence trims whitespace, then removes a leading "```json" marker and a
// trailing "```" marker if present. Each marker is removed at most once.
func StripFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, jsonFenceOpen)
	text = strings.TrimSuffix(text, fenceClose)
	return text
}

// ExtractJSON strips an optional code fence from text and strictly decodes the
// remainder into v. A literal null counts as a missing value. No further
// structural validation is done.
func ExtractJSON(text string, v any) error {
	body := []byte(StripFence(text))
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Errorf("%w: no JSON content", ErrInvalidResponse)
	}
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return fmt.Errorf("%w: JSON value is null", ErrInvalidResponse)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: failed to parse JSON response: %v", ErrInvalidResponse, err)
	}
	return nil
}
