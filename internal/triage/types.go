package triage

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one exchange in the caller-owned conversation history.
type Turn struct {
	Role    Role
	Content string
}

// Language is one of the supported reply languages.
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageKorean   Language = "ko"
	LanguageJapanese Language = "ja"
	LanguageSpanish  Language = "es"
)

// Stage is the assessment stage of a triage dialogue.
type Stage string

const (
	StageInitial       Stage = "initial"
	StageClarification Stage = "clarification"
	StageFinal         Stage = "final"
	// StageCompleted is reported only when the history already holds a closing reply.
	StageCompleted Stage = "completed"
)

// Location is a WGS84 coordinate supplied by the caller.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Image is an already validated image attached to the current turn.
type Image struct {
	Data     []byte
	MIMEType string
}

// DefaultFacilityRadiusKM is the radius used for triggered facility lookups.
const DefaultFacilityRadiusKM = 10.0

// FacilityLookupRequest asks the caller to run a facility search.
type FacilityLookupRequest struct {
	Latitude  float64
	Longitude float64
	RadiusKM  float64
}

// Document is a knowledge base hit used as prompt context.
type Document struct {
	Title   string
	Content string
	Snippet string
}

// RunInput is the input of one orchestration call.
type RunInput struct {
	Text     string
	History  []Turn
	Image    *Image
	Location *Location
}

// Metadata describes how a TriageResult was produced.
type Metadata struct {
	AssessmentStage       Stage
	ConversationLength    int
	DetectedLanguage      Language
	ConsultationCompleted bool
	ProviderName          string
	ModelName             string
	ContextDocuments      int
}

// RunOutput is the TriageResult of one orchestration call.
type RunOutput struct {
	RawText       string
	BriefText     string
	DetailedText  string
	FunctionCalls []FacilityLookupRequest
	Metadata      Metadata
}
