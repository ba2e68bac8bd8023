package domain

// Emotion labels used by emotion analysis.
const (
	EmotionJoy      = "joy"
	EmotionSadness  = "sadness"
	EmotionAnger    = "anger"
	EmotionFear     = "fear"
	EmotionSurprise = "surprise"
	EmotionDisgust  = "disgust"
	EmotionNeutral  = "neutral"
)

// Emotions holds a confidence value in [0, 1] for each of the seven labels.
// The values are not required to sum to 1.
type Emotions struct {
	Joy      float64 `json:"joy"`
	Sadness  float64 `json:"sadness"`
	Anger    float64 `json:"anger"`
	Fear     float64 `json:"fear"`
	Surprise float64 `json:"surprise"`
	Disgust  float64 `json:"disgust"`
	Neutral  float64 `json:"neutral"`
}

// EmotionAnalysis is the result of analyzing the emotional tone of a text.
type EmotionAnalysis struct {
	Emotions        Emotions `json:"emotions"`
	DominantEmotion string   `json:"dominant_emotion"`
	Confidence      float64  `json:"confidence"`
	Summary         string   `json:"summary"`
}
