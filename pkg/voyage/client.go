package voyage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://api.voyageai.com/v1"
	DefaultModel   = "voyage-3"
	DefaultDims    = 1024

	defaultTimeout = 30 * time.Second
	embeddingsPath = "/embeddings"
)

var (
	ErrMissingAPIKey = errors.New("voyage: api key is required")
	ErrEmptyInput    = errors.New("voyage: nothing to embed")
)

// APIError is a non-200 answer from the embeddings endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("voyage: status %d", e.StatusCode)
	}
	return fmt.Sprintf("voyage: status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the Voyage AI embeddings API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

var _ IVoyage = (*Client)(nil)

func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// WithModel switches the embedding model. Empty keeps the current one.
func (c *Client) WithModel(model string) *Client {
	if model != "" {
		c.model = model
	}
	return c
}

func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Embed returns one vector per text, placed by the index Voyage reports.
func (c *Client) Embed(ctx context.Context, texts []string, inputType string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}

	var out EmbedResponse
	err := c.post(ctx, embeddingsPath, EmbedRequest{Input: texts, Model: c.model, InputType: inputType}, &out)
	if err != nil {
		return nil, err
	}
	return orderEmbeddings(out.Data, len(texts))
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("voyage: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("voyage: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("voyage: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("voyage: decode response: %w", err)
	}
	return nil
}

// decodeAPIError reads either {"detail": ...} or {"error": {"message": ...}}.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body ErrorResponse
	if json.NewDecoder(resp.Body).Decode(&body) == nil {
		apiErr.Message = body.Detail
		if apiErr.Message == "" {
			apiErr.Message = body.Error.Message
		}
	}
	return apiErr
}

func orderEmbeddings(data []EmbeddingData, n int) ([][]float32, error) {
	if len(data) != n {
		return nil, fmt.Errorf("voyage: got %d embeddings for %d inputs", len(data), n)
	}
	vectors := make([][]float32, n)
	for _, d := range data {
		if d.Index < 0 || d.Index >= n {
			return nil, fmt.Errorf("voyage: embedding index %d out of range", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}
