package http

import (
	facilityHTTP "github.com/devkan/FirstAidVox/internal/facility/delivery/http"
	"github.com/devkan/FirstAidVox/internal/triage"
)

// FunctionSearchHospitals names the facility lookup action in responses.
const FunctionSearchHospitals = "search_hospitals"

// --- Request DTOs ---

type historyItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type locationReq struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// chatJSONReq is the application/json form of a chat request. The image, if
// any, is base64 encoded.
type chatJSONReq struct {
	Text      string        `json:"text"`
	History   []historyItem `json:"history"`
	Latitude  *float64      `json:"latitude"`
	Longitude *float64      `json:"longitude"`
	Location  *locationReq  `json:"location"`
	Image     string        `json:"image"`
}

type chatReq struct {
	Text     string
	History  []triage.Turn
	Location *triage.Location
	Image    *triage.Image
}

func (r chatReq) toInput() triage.RunInput {
	return triage.RunInput{
		Text:     r.Text,
		History:  r.History,
		Image:    r.Image,
		Location: r.Location,
	}
}

// --- Response DTOs ---

type functionCallResp struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKM  float64 `json:"radius_km"`
}

type metadataResp struct {
	AssessmentStage       string `json:"assessment_stage"`
	ConversationLength    int    `json:"conversation_length"`
	DetectedLanguage      string `json:"detected_language"`
	ConsultationCompleted bool   `json:"consultation_completed"`
	Provider              string `json:"provider,omitempty"`
	Model                 string `json:"model,omitempty"`
	ContextDocuments      int    `json:"context_documents"`
}

type chatResp struct {
	Response      string                      `json:"response"`
	BriefText     string                      `json:"brief_text"`
	DetailedText  string                      `json:"detailed_text"`
	Hospitals     []facilityHTTP.FacilityResp `json:"hospitals"`
	FunctionCalls []functionCallResp          `json:"function_calls"`
	Metadata      metadataResp                `json:"metadata"`
	RequestID     string                      `json:"request_id,omitempty"`
}

func (h *handler) newChatResp(out triage.RunOutput, hospitals []facilityHTTP.FacilityResp, requestID string) chatResp {
	calls := make([]functionCallResp, len(out.FunctionCalls))
	for i, fc := range out.FunctionCalls {
		calls[i] = functionCallResp{
			Name:      FunctionSearchHospitals,
			Latitude:  fc.Latitude,
			Longitude: fc.Longitude,
			RadiusKM:  fc.RadiusKM,
		}
	}
	if hospitals == nil {
		hospitals = []facilityHTTP.FacilityResp{}
	}

	return chatResp{
		Response:      out.RawText,
		BriefText:     out.BriefText,
		DetailedText:  out.DetailedText,
		Hospitals:     hospitals,
		FunctionCalls: calls,
		Metadata: metadataResp{
			AssessmentStage:       string(out.Metadata.AssessmentStage),
			ConversationLength:    out.Metadata.ConversationLength,
			DetectedLanguage:      string(out.Metadata.DetectedLanguage),
			ConsultationCompleted: out.Metadata.ConsultationCompleted,
			Provider:              out.Metadata.ProviderName,
			Model:                 out.Metadata.ModelName,
			ContextDocuments:      out.Metadata.ContextDocuments,
		},
		RequestID: requestID,
	}
}
