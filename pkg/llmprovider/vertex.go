package llmprovider

import (
	"context"
	"fmt"

	"cloud.google.com/go/auth/credentials"
	"google.golang.org/genai"
)

const (
	// DefaultVertexLocation is the Vertex AI region used when none is configured.
	DefaultVertexLocation = "us-central1"

	// DefaultVertexModel is the Vertex AI model used when none is configured.
	DefaultVertexModel = "gemini-2.0-flash-lite"

	cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)

// VertexConfig configures the Vertex AI adapter.
type VertexConfig struct {
	ProjectID       string
	Location        string
	Model           string
	CredentialsPath string
}

// VertexAdapter serves generation through Vertex AI with the genai SDK.
type VertexAdapter struct {
	client *genai.Client
	model  string
}

// NewVertexAdapter creates a genai client on the Vertex AI backend. Without a
// credentials file, Application Default Credentials are used.
func NewVertexAdapter(ctx context.Context, cfg VertexConfig) (*VertexAdapter, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("vertex: project id is required")
	}
	if cfg.Location == "" {
		cfg.Location = DefaultVertexLocation
	}
	if cfg.Model == "" {
		cfg.Model = DefaultVertexModel
	}

	clientCfg := &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  cfg.ProjectID,
		Location: cfg.Location,
	}
	if cfg.CredentialsPath != "" {
		creds, err := credentials.DetectDefault(&credentials.DetectOptions{
			Scopes:          []string{cloudPlatformScope},
			CredentialsFile: cfg.CredentialsPath,
		})
		if err != nil {
			return nil, fmt.Errorf("vertex: failed to load credentials: %w", err)
		}
		clientCfg.Credentials = creds
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("vertex: failed to create client: %w", err)
	}

	return &VertexAdapter{client: client, model: cfg.Model}, nil
}

// GenerateContent implements Provider interface
func (a *VertexAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		contents = append(contents, toGenaiContent(msg))
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, toGenaiConfig(req))
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      TextMessage(RoleAssistant, resp.Text()),
		ProviderName: a.Name(),
		ModelName:    a.model,
		Usage:        &Usage{},
	}
	if resp.UsageMetadata != nil {
		out.Usage = &Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

// Name returns provider name
func (a *VertexAdapter) Name() string {
	return "vertex"
}

// Model returns model name
func (a *VertexAdapter) Model() string {
	return a.model
}

// toGenaiConfig maps the request knobs; zero values leave the model defaults.
func toGenaiConfig(req *Request) *genai.GenerateContentConfig {
	genCfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != nil {
		genCfg.SystemInstruction = toGenaiContent(*req.SystemInstruction)
	}
	if req.Temperature > 0 {
		temperature := float32(req.Temperature)
		genCfg.Temperature = &temperature
	}
	if req.MaxTokens > 0 {
		genCfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	return genCfg
}

func toGenaiContent(msg Message) *genai.Content {
	content := &genai.Content{Role: genai.RoleUser}
	if msg.Role == RoleAssistant {
		content.Role = genai.RoleModel
	}
	for _, p := range msg.Parts {
		if p.InlineData != nil {
			content.Parts = append(content.Parts, &genai.Part{
				InlineData: &genai.Blob{MIMEType: p.InlineData.MIMEType, Data: p.InlineData.Data},
			})
			continue
		}
		content.Parts = append(content.Parts, &genai.Part{Text: p.Text})
	}
	return content
}
