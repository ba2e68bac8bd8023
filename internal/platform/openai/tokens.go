package openai

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
	openai "github.com/sashabaranov/go-openai"
)

// TokenCounter counts tokens the way the target model tokenizes text.
type TokenCounter interface {
	Count(text string) int
}

type tiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTiktokenCounter loads the BPE encoding for model. The first load for an
// encoding downloads its ranks file, so callers should not do this on a hot path.
func NewTiktokenCounter(model string) (TokenCounter, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer for %s: %w", model, err)
	}
	return &tiktokenCounter{encoding: enc}, nil
}

func (c *tiktokenCounter) Count(text string) int {
	return len(c.encoding.Encode(text, nil, nil))
}

// Every chat message carries a few framing tokens on top of its content, and
// every reply is primed with three more.
const (
	tokensPerMessage = 4
	tokensPerReply   = 3
)

// contextWindows maps model name prefixes to their context size. Longer
// prefixes are listed first so that "gpt-4o" wins over "gpt-4".
var contextWindows = []struct {
	prefix string
	tokens int
}{
	{"gpt-4o", 128000},
	{"gpt-4-turbo", 128000},
	{"gpt-4.1", 1047576},
	{"gpt-4-32k", 32768},
	{"gpt-4", 8192},
	{"gpt-3.5-turbo", 16385},
}

const defaultContextWindow = 8192

func contextWindow(model string) int {
	for _, w := range contextWindows {
		if strings.HasPrefix(model, w.prefix) {
			return w.tokens
		}
	}
	return defaultContextWindow
}

func promptTokens(counter TokenCounter, messages []openai.ChatCompletionMessage) int {
	total := tokensPerReply
	for _, m := range messages {
		total += tokensPerMessage + counter.Count(m.Role) + counter.Count(m.Content)
	}
	return total
}

// contextOverflow reports whether the prompt plus the fixed output allowance
// would exceed the model's context window, along with the prompt token count.
// Without a counter nothing is known and it reports false.
func contextOverflow(counter TokenCounter, model string, maxOutput int, messages []openai.ChatCompletionMessage) (bool, int) {
	if counter == nil {
		return false, 0
	}

	used := promptTokens(counter, messages)
	return used+maxOutput > contextWindow(model), used
}
