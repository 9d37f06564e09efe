package llmprovider

import (
	"context"

	"github.com/devkan/FirstAidVox/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		sys := toGeminiContent(*req.SystemInstruction)
		sys.Role = ""
		geminiReq.SystemInstruction = &sys
	}
	for i, msg := range req.Messages {
		geminiReq.Messages[i] = toGeminiContent(msg)
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      Message{Role: RoleAssistant},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	for _, p := range resp.Content.Parts {
		out.Content.Parts = append(out.Content.Parts, Part{Text: p.Text})
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiContent(msg Message) gemini.Content {
	role := msg.Role
	if role == RoleAssistant {
		role = "model"
	}
	content := gemini.Content{Role: role, Parts: make([]gemini.Part, len(msg.Parts))}
	for i, p := range msg.Parts {
		content.Parts[i] = gemini.Part{Text: p.Text}
		if p.InlineData != nil {
			content.Parts[i].InlineData = &gemini.InlineData{
				MIMEType: p.InlineData.MIMEType,
				Data:     p.InlineData.Data,
			}
		}
	}
	return content
}
