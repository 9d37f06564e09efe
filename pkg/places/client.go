package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the Google Maps Places API endpoint.
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/place"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Client is the Places Nearby Search API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Places client.
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("places: API key is required")
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// WithBaseURL overrides the default API base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithTimeout overrides the HTTP client timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient = &http.Client{Timeout: timeout}
	return c
}

// Nearby runs a Nearby Search. ZERO_RESULTS is not an error.
func (c *Client) Nearby(ctx context.Context, req NearbyRequest) ([]Place, error) {
	q := url.Values{}
	q.Set("location", strconv.FormatFloat(req.Latitude, 'f', -1, 64)+","+strconv.FormatFloat(req.Longitude, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(req.RadiusMeters))
	if req.Type != "" {
		q.Set("type", req.Type)
	}
	q.Set("key", c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/nearbysearch/json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("places: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("places: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("places: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result NearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("places: failed to decode response: %w", err)
	}

	switch result.Status {
	case statusOK, "":
		return result.Results, nil
	case statusZeroResults:
		return nil, nil
	default:
		return nil, fmt.Errorf("places: status %s: %s", result.Status, result.ErrorMessage)
	}
}
