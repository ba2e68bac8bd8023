package generation

// HarmCategory is a provider-side content-safety category.
type HarmCategory string

// BlockThreshold is the minimum severity at which the provider refuses to generate.
type BlockThreshold string

// Harm categories covered by the safety policy.
const (
	HarmCategoryHarassment       HarmCategory = "harassment"
	HarmCategoryHateSpeech       HarmCategory = "hate_speech"
	HarmCategorySexuallyExplicit HarmCategory = "sexually_explicit"
	HarmCategoryDangerousContent HarmCategory = "dangerous_content"
)

// Block thresholds.
const (
	BlockLowAndAbove    BlockThreshold = "block_low_and_above"
	BlockMediumAndAbove BlockThreshold = "block_medium_and_above"
	BlockOnlyHigh       BlockThreshold = "block_only_high"
	BlockNone           BlockThreshold = "block_none"
)

// HarmCategories lists the policed categories in a stable order.
var HarmCategories = []HarmCategory{
	HarmCategoryHarassment,
	HarmCategoryHateSpeech,
	HarmCategorySexuallyExplicit,
	HarmCategoryDangerousContent,
}

// Settings holds the sampling parameters and safety policy a backend applies to
// every call. It is fixed when the backend is constructed.
type Settings struct {
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
	Safety          map[HarmCategory]BlockThreshold
}

// DefaultSettings returns the compiled-in settings: temperature 0.7, top-p 0.95,
// top-k 40, 2048 output tokens, and "block medium and above" for every category.
func DefaultSettings() Settings {
	safety := make(map[HarmCategory]BlockThreshold, len(HarmCategories))
	for _, c := range HarmCategories {
		safety[c] = BlockMediumAndAbove
	}
	return Settings{
		Temperature:     0.7,
		TopP:            0.95,
		TopK:            40,
		MaxOutputTokens: 2048,
		Safety:          safety,
	}
}
