package domain

// QuestionType classifies what a reflective question asks the writer to dig into.
type QuestionType string

// Possible question types.
const (
	QuestionTypeEmotion    QuestionType = "emotion"
	QuestionTypeThought    QuestionType = "thought"
	QuestionTypeAction     QuestionType = "action"
	QuestionTypeReflection QuestionType = "reflection"
)

// QuestionsPerEntry is the number of questions requested for one diary entry.
// The model is asked for this many; the parsed count is not enforced.
const QuestionsPerEntry = 5

// Question is a reflective question generated from a diary entry.
type Question struct {
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
}
