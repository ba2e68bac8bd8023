package openai

import (
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestContextWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		model string
		want  int
	}{
		{"gpt-4o-mini", 128000},
		{"gpt-4o", 128000},
		{"gpt-4-turbo-preview", 128000},
		{"gpt-4", 8192},
		{"gpt-3.5-turbo", 16385},
		{"local-llama", defaultContextWindow},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, contextWindow(tt.model))
		})
	}
}

func TestContextOverflow(t *testing.T) {
	t.Parallel()

	message := func(n int) []openai.ChatCompletionMessage {
		return []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: strings.Repeat("a", n)},
		}
	}
	// 4 framing + len("user") + n content + 3 reply priming
	overhead := tokensPerMessage + len(openai.ChatMessageRoleUser) + tokensPerReply

	tests := []struct {
		name         string
		counter      TokenCounter
		content      int
		wantOverflow bool
		wantUsed     int
	}{
		{name: "nil_counter", counter: nil, content: 100000, wantOverflow: false, wantUsed: 0},
		{name: "small_prompt", counter: runeCounter{}, content: 10, wantOverflow: false, wantUsed: 10 + overhead},
		{name: "exactly_fits", counter: runeCounter{}, content: 8192 - 2048 - overhead, wantOverflow: false, wantUsed: 8192 - 2048},
		{name: "eats_into_output", counter: runeCounter{}, content: 7000, wantOverflow: true, wantUsed: 7000 + overhead},
		{name: "exceeds_window", counter: runeCounter{}, content: 9000, wantOverflow: true, wantUsed: 9000 + overhead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			overflow, used := contextOverflow(tt.counter, "gpt-4", 2048, message(tt.content))
			assert.Equal(t, tt.wantOverflow, overflow)
			assert.Equal(t, tt.wantUsed, used)
		})
	}
}
