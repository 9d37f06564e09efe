package vertexsearch

import (
	"context"
	"fmt"
	"strings"

	"github.com/devkan/FirstAidVox/internal/triage"
	"github.com/devkan/FirstAidVox/internal/triage/repository"
)

// SearchDocuments queries the engine and keeps documents that carry any text.
func (r *implRepository) SearchDocuments(ctx context.Context, opt repository.SearchDocumentsOptions) ([]triage.Document, error) {
	if strings.TrimSpace(opt.Query) == "" {
		return nil, nil
	}

	results, err := r.client.Search(ctx, opt.Query, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "vertexsearch repository: search failed: %v", err)
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}

	docs := make([]triage.Document, 0, len(results))
	for _, d := range results {
		if d.Title == "" && d.Content == "" && d.Snippet == "" {
			continue
		}
		docs = append(docs, triage.Document{
			Title:   d.Title,
			Content: d.Content,
			Snippet: d.Snippet,
		})
		if opt.Limit > 0 && len(docs) == opt.Limit {
			break
		}
	}

	r.l.Infof(ctx, "vertexsearch repository: found %d documents", len(docs))
	return docs, nil
}
