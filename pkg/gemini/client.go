package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client calls the generateContent endpoint of the Gemini API.
type Client struct {
	cfg Config
}

// New creates a client. Only the API key is required.
func New(cfg Config) (*Client, error) {
	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	return &Client{cfg: cfg}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.cfg.Model
}

// GenerateContent sends req and returns the first candidate. A blocked prompt
// or a candidate stopped for safety without any text yields ErrBlocked.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(c.buildRequest(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.APIURL, c.cfg.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(headerAPIKey, c.cfg.APIKey)

	resp, err := c.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}
	return toResponse(&result)
}

func (c *Client) buildRequest(req *Request) generateRequest {
	out := generateRequest{
		SystemInstruction: req.SystemInstruction,
		Contents:          req.Messages,
		SafetySettings:    make([]safetySetting, len(harmCategories)),
	}
	for i, category := range harmCategories {
		out.SafetySettings[i] = safetySetting{Category: category, Threshold: c.cfg.SafetyThreshold}
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		out.GenerationConfig = &generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}
	return out
}

func toResponse(resp *generateResponse) (*Response, error) {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("%w: prompt %s", ErrBlocked, resp.PromptFeedback.BlockReason)
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = resp.UsageMetadata.PromptTokenCount
		usage.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}
	if len(resp.Candidates) == 0 {
		return &Response{Usage: usage}, nil
	}

	first := resp.Candidates[0]
	if first.FinishReason == finishReasonSafety && !hasText(first.Content) {
		return nil, fmt.Errorf("%w: candidate stopped for safety", ErrBlocked)
	}
	return &Response{Content: first.Content, FinishReason: first.FinishReason, Usage: usage}, nil
}

func hasText(c Content) bool {
	for _, p := range c.Parts {
		if p.Text != "" {
			return true
		}
	}
	return false
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(raw)}

	var body errorBody
	if json.Unmarshal(raw, &body) == nil && body.Error.Message != "" {
		apiErr.Status = body.Error.Status
		apiErr.Message = body.Error.Message
	}
	return apiErr
}
