package vertexsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	discoveryengine "google.golang.org/api/discoveryengine/v1"
	"google.golang.org/api/option"
)

const (
	// DefaultLocation is the Discovery Engine location used when none is configured.
	DefaultLocation = "global"

	servingConfigTemplate = "projects/%s/locations/%s/collections/default_collection/engines/%s/servingConfigs/default_search"
)

// Client queries a Vertex AI Search (Discovery Engine) app.
// It is safe for concurrent use.
type Client struct {
	svc           *discoveryengine.Service
	servingConfig string
}

// New creates a new search client. Without a credentials file, Application
// Default Credentials are used.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ProjectID == "" || cfg.EngineID == "" {
		return nil, fmt.Errorf("vertexsearch: project id and engine id are required")
	}
	if cfg.Location == "" {
		cfg.Location = DefaultLocation
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		data, err := os.ReadFile(cfg.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("vertexsearch: failed to read credentials: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, discoveryengine.CloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("vertexsearch: failed to parse credentials: %w", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	}

	svc, err := discoveryengine.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("vertexsearch: failed to create service: %w", err)
	}

	return &Client{
		svc:           svc,
		servingConfig: ServingConfig(cfg.ProjectID, cfg.Location, cfg.EngineID),
	}, nil
}

// ServingConfig returns the default_search serving config resource name.
func ServingConfig(projectID, location, engineID string) string {
	return fmt.Sprintf(servingConfigTemplate, projectID, location, engineID)
}

// Search runs query and returns at most pageSize documents.
func (c *Client) Search(ctx context.Context, query string, pageSize int) ([]Document, error) {
	req := &discoveryengine.GoogleCloudDiscoveryengineV1SearchRequest{
		Query:    query,
		PageSize: int64(pageSize),
		ContentSearchSpec: &discoveryengine.GoogleCloudDiscoveryengineV1SearchRequestContentSearchSpec{
			SnippetSpec: &discoveryengine.GoogleCloudDiscoveryengineV1SearchRequestContentSearchSpecSnippetSpec{
				ReturnSnippet: true,
			},
		},
		QueryExpansionSpec: &discoveryengine.GoogleCloudDiscoveryengineV1SearchRequestQueryExpansionSpec{
			Condition: "AUTO",
		},
		SpellCorrectionSpec: &discoveryengine.GoogleCloudDiscoveryengineV1SearchRequestSpellCorrectionSpec{
			Mode: "AUTO",
		},
	}

	resp, err := c.svc.Projects.Locations.Collections.Engines.ServingConfigs.Search(c.servingConfig, req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("vertexsearch: search failed: %w", err)
	}

	docs := make([]Document, 0, len(resp.Results))
	for _, r := range resp.Results {
		if r.Document == nil {
			continue
		}
		docs = append(docs, toDocument(r.Document))
	}
	return docs, nil
}

func toDocument(d *discoveryengine.GoogleCloudDiscoveryengineV1Document) Document {
	doc := Document{ID: d.Id}

	var structData map[string]any
	if len(d.StructData) > 0 {
		_ = json.Unmarshal(d.StructData, &structData)
	}
	var derived map[string]any
	if len(d.DerivedStructData) > 0 {
		_ = json.Unmarshal(d.DerivedStructData, &derived)
	}

	doc.Title = firstString(structData, "title")
	if doc.Title == "" {
		doc.Title = firstString(derived, "title")
	}
	doc.Content = firstString(structData, "content", "text", "body")
	doc.Link = firstString(derived, "link")

	if snippets, ok := derived["snippets"].([]any); ok {
		var parts []string
		for _, s := range snippets {
			if m, ok := s.(map[string]any); ok {
				if text, ok := m["snippet"].(string); ok && text != "" {
					parts = append(parts, text)
				}
			}
		}
		doc.Snippet = strings.Join(parts, " ")
	}
	if doc.Snippet == "" {
		doc.Snippet = firstString(structData, "snippet")
	}

	return doc
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
