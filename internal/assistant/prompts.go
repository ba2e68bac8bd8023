package assistant

import (
	"fmt"

	"github.com/YUKIMIKAMI/diary-app/internal/domain"
)

// DefaultKeywordLimit is used when ExtractKeywords is given a limit below 1.
const DefaultKeywordLimit = 10

// counselorPersona is prepended to every chat message.
const counselorPersona = `あなたは優しく共感的なカウンセラーです。
ユーザーの日記や悩みに対して、以下の点に注意して応答してください：
1. 共感的で温かい言葉遣い
2. 判断や批判をしない
3. 具体的で実践的なアドバイス
4. 必要に応じて質問を投げかけて、ユーザーの自己理解を深める`

// OpeningPrompts are offered when the writer has not started yet.
var OpeningPrompts = []string{
	"今日はどんな一日でしたか？印象に残った出来事を教えてください。",
	"今日の気分はいかがですか？何か心に残ったことはありましたか？",
	"今日という日を一言で表すとしたら、どんな言葉になりますか？",
	"今日あなたが感謝したいことは何ですか？",
	"今日の中で、一番自分らしいと感じた瞬間はいつでしたか？",
}

// Fallback texts.
const (
	FallbackChatResponse     = "申し訳ございません。現在応答を生成できません。しばらくしてから再度お試しください。"
	FallbackFollowUpQuestion = "その時、どんな気持ちでしたか？もう少し詳しく教えてください。"
	FallbackEmotionSummary   = "感情を分析できませんでした"
)

// FallbackQuestions returns the questions used when generation fails.
// A fresh slice is returned on every call.
func FallbackQuestions() []domain.Question {
	return []domain.Question{
		{Question: "今日一番印象に残った出来事は何でしたか？", Type: domain.QuestionTypeReflection},
		{Question: "その時どんな気持ちでしたか？", Type: domain.QuestionTypeEmotion},
		{Question: "もし違う選択をしていたら、どうなっていたと思いますか？", Type: domain.QuestionTypeThought},
	}
}

// FallbackEmotionAnalysis returns the neutral analysis used when analysis fails.
func FallbackEmotionAnalysis() domain.EmotionAnalysis {
	return domain.EmotionAnalysis{
		Emotions:        domain.Emotions{Neutral: 1.0},
		DominantEmotion: domain.EmotionNeutral,
		Confidence:      0.0,
		Summary:         FallbackEmotionSummary,
	}
}

func questionsPrompt(diaryContent string) string {
	return fmt.Sprintf(`以下の日記の内容を読んで、書いた人の自己理解を深めるための質問を%dつ生成してください。
質問は具体的で、感情や考えを深掘りするものにしてください。

日記の内容:
%s

JSONフォーマットで返してください:
[
    {"question": "質問内容", "type": "emotion/thought/action/reflection"}
]`, domain.QuestionsPerEntry, diaryContent)
}

func emotionPrompt(text string) string {
	return fmt.Sprintf(`以下のテキストの感情を分析してください。

テキスト:
%s

以下のJSONフォーマットで返してください:
{
    "emotions": {
        "joy": 0.0-1.0の数値,
        "sadness": 0.0-1.0の数値,
        "anger": 0.0-1.0の数値,
        "fear": 0.0-1.0の数値,
        "surprise": 0.0-1.0の数値,
        "disgust": 0.0-1.0の数値,
        "neutral": 0.0-1.0の数値
    },
    "dominant_emotion": "最も強い感情",
    "confidence": 0.0-1.0の信頼度,
    "summary": "感情の要約"
}`, text)
}

func chatMessage(message string) string {
	return counselorPersona + "\n\nユーザー: " + message
}

func followUpPrompt(initialInput string) string {
	return fmt.Sprintf(`ユーザーが日記に以下の内容を書きました:
%s

この内容を深掘りし、より詳細な記録を残すための
フォローアップの質問を1つ生成してください。
質問は具体的で、感情や詳細を引き出すものにしてください。`, initialInput)
}

func keywordsPrompt(text string, limit int) string {
	return fmt.Sprintf(`以下のテキストから重要なキーワードを最大%d個抽出してください。
固有名詞、感情を表す言葉、行動を表す言葉を優先してください。

テキスト:
%s

JSONフォーマットで返してください:
["キーワード1", "キーワード2", ...]`, limit, text)
}
