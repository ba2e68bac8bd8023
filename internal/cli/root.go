// Package cli implements the diaryctl command line tool, which runs each
// diary assistant operation once against the configured LLM backend.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YUKIMIKAMI/diary-app/internal/assistant"
	"github.com/YUKIMIKAMI/diary-app/internal/domain"
)

// Assistant is the set of operations the commands invoke.
type Assistant interface {
	GenerateQuestions(ctx context.Context, diaryContent string) []domain.Question
	AnalyzeEmotion(ctx context.Context, text string) domain.EmotionAnalysis
	ChatConsultation(ctx context.Context, message string, history []domain.ConversationTurn) string
	InteractivePrompt(ctx context.Context, initialInput string) string
	ExtractKeywords(ctx context.Context, text string, limit int) []string
}

var _ Assistant = (*assistant.Assistant)(nil)

// AssistantFactory builds the assistant a command runs against. It is called
// lazily so that commands like version need no configuration.
type AssistantFactory func(ctx context.Context) (Assistant, error)

// NewRootCmd builds the diaryctl command tree.
func NewRootCmd(newAssistant AssistantFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "diaryctl",
		Short: "Diary assistant from the terminal",
		Long: `diaryctl runs the diary assistant operations once from a terminal:
reflective questions, emotion analysis, counseling chat, writing prompts and
keyword extraction. Text is taken from the arguments, or from stdin when no
arguments are given.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newQuestionsCmd(newAssistant),
		newEmotionCmd(newAssistant),
		newChatCmd(newAssistant),
		newPromptCmd(newAssistant),
		newKeywordsCmd(newAssistant),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with the default configuration-backed assistant.
func Execute() {
	if err := NewRootCmd(defaultAssistant).Execute(); err != nil {
		os.Exit(1)
	}
}

// readText joins args, or reads stdin when there are none.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no input text given")
	}
	return text, nil
}
