package gemini

import "time"

const (
	DefaultModel   = "gemini-2.0-flash-lite"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	headerAPIKey = "x-goog-api-key"
)

// Safety thresholds accepted by the API.
const (
	BlockNone         = "BLOCK_NONE"
	BlockOnlyHigh     = "BLOCK_ONLY_HIGH"
	BlockMediumAbove  = "BLOCK_MEDIUM_AND_ABOVE"
	DefaultSafetyMode = BlockOnlyHigh
)

// First-aid answers talk about bleeding, burns and poisoning, which the default
// thresholds tend to flag as dangerous content.
var harmCategories = []string{
	"HARM_CATEGORY_DANGEROUS_CONTENT",
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
}

const finishReasonSafety = "SAFETY"
