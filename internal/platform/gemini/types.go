package gemini

import (
	"google.golang.org/genai"

	"github.com/YUKIMIKAMI/diary-app/internal/domain"
	"github.com/YUKIMIKAMI/diary-app/internal/generation"
)

var harmCategories = map[generation.HarmCategory]genai.HarmCategory{
	generation.HarmCategoryHarassment:       genai.HarmCategoryHarassment,
	generation.HarmCategoryHateSpeech:       genai.HarmCategoryHateSpeech,
	generation.HarmCategorySexuallyExplicit: genai.HarmCategorySexuallyExplicit,
	generation.HarmCategoryDangerousContent: genai.HarmCategoryDangerousContent,
}

var blockThresholds = map[generation.BlockThreshold]genai.HarmBlockThreshold{
	generation.BlockLowAndAbove:    genai.HarmBlockThresholdBlockLowAndAbove,
	generation.BlockMediumAndAbove: genai.HarmBlockThresholdBlockMediumAndAbove,
	generation.BlockOnlyHigh:       genai.HarmBlockThresholdBlockOnlyHigh,
	generation.BlockNone:           genai.HarmBlockThresholdBlockNone,
}

// toGenerateContentConfig converts the fixed settings into the genai request
// config. Safety settings follow generation.HarmCategories order so that every
// request is byte-for-byte identical.
func toGenerateContentConfig(s generation.Settings) *genai.GenerateContentConfig {
	safety := make([]*genai.SafetySetting, 0, len(s.Safety))
	for _, category := range generation.HarmCategories {
		threshold, ok := s.Safety[category]
		if !ok {
			continue
		}
		safety = append(safety, &genai.SafetySetting{
			Category:  harmCategories[category],
			Threshold: blockThresholds[threshold],
		})
	}

	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(s.Temperature),
		TopP:            genai.Ptr(s.TopP),
		TopK:            genai.Ptr(float32(s.TopK)),
		MaxOutputTokens: s.MaxOutputTokens,
		SafetySettings:  safety,
	}
}

// toHistory maps conversation turns onto genai chat contents, keeping order.
// "user" stays user; every other role becomes model.
func toHistory(turns []domain.ConversationTurn) []*genai.Content {
	history := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		role := genai.Role(genai.RoleModel)
		if turn.IsUser() {
			role = genai.RoleUser
		}
		history = append(history, genai.NewContentFromText(turn.Content, role))
	}
	return history
}
