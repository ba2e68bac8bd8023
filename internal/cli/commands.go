package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YUKIMIKAMI/diary-app/internal/domain"
)

func newQuestionsCmd(newAssistant AssistantFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "questions [diary text]",
		Short: "Generate reflective questions for a diary entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			a, err := newAssistant(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, q := range a.GenerateQuestions(cmd.Context(), text) {
				fmt.Fprintf(out, "%d. [%s] %s\n", i+1, q.Type, q.Question)
			}
			return nil
		},
	}
}

func newEmotionCmd(newAssistant AssistantFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "emotion [text]",
		Short: "Analyze the emotional tone of a text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			a, err := newAssistant(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(a.AnalyzeEmotion(cmd.Context(), text))
		},
	}
}

func newChatCmd(newAssistant AssistantFactory) *cobra.Command {
	var historyPath string

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask the counselor for a reply",
		Long: `Send a message to the counselor. Prior turns can be supplied with
--history as a JSON array of {"role": "user"|"assistant", "content": "..."}.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := readText(cmd, args)
			if err != nil {
				return err
			}
			history, err := loadHistory(historyPath)
			if err != nil {
				return err
			}
			a, err := newAssistant(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.ChatConsultation(cmd.Context(), message, history))
			return nil
		},
	}

	cmd.Flags().StringVar(&historyPath, "history", "", "Path to a JSON file with prior conversation turns")
	return cmd
}

func newPromptCmd(newAssistant AssistantFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt [what you wrote so far]",
		Short: "Get a writing prompt, or a follow-up question about what you wrote",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No args means an opening prompt; stdin is not read.
			var input string
			if len(args) > 0 {
				text, err := readText(cmd, args)
				if err != nil {
					return err
				}
				input = text
			}
			a, err := newAssistant(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.InteractivePrompt(cmd.Context(), input))
			return nil
		},
	}
}

func newKeywordsCmd(newAssistant AssistantFactory) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "keywords [text]",
		Short: "Extract keywords from a text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			a, err := newAssistant(cmd.Context())
			if err != nil {
				return err
			}

			for _, kw := range a.ExtractKeywords(cmd.Context(), text, limit) {
				fmt.Fprintln(cmd.OutOrStdout(), kw)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of keywords")
	return cmd
}

func loadHistory(path string) ([]domain.ConversationTurn, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var turns []domain.ConversationTurn
	if err := json.Unmarshal(data, &turns); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	for i, turn := range turns {
		if err := turn.Validate(); err != nil {
			return nil, fmt.Errorf("history turn %d: %w", i, err)
		}
	}
	return turns, nil
}
