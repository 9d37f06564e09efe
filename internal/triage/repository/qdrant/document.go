package qdrant

import (
	"context"
	"fmt"
	"strings"

	"github.com/devkan/FirstAidVox/internal/triage"
	"github.com/devkan/FirstAidVox/internal/triage/repository"
	pkgQdrant "github.com/devkan/FirstAidVox/pkg/qdrant"
	"github.com/devkan/FirstAidVox/pkg/voyage"
)

// SearchDocuments embeds the query and returns the closest documents.
func (r *implRepository) SearchDocuments(ctx context.Context, opt repository.SearchDocumentsOptions) ([]triage.Document, error) {
	if strings.TrimSpace(opt.Query) == "" {
		return nil, nil
	}

	vectors, err := r.embedder.Embed(ctx, []string{opt.Query}, voyage.InputTypeQuery)
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "qdrant repository: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:         vectors[0],
		Limit:          opt.Limit,
		WithPayload:    true,
		ScoreThreshold: r.scoreThreshold,
	})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	docs := make([]triage.Document, 0, len(resp.Result))
	for _, scored := range resp.Result {
		doc := triage.Document{
			Title:   payloadString(scored.Payload, PayloadTitle),
			Content: payloadString(scored.Payload, PayloadContent),
			Snippet: payloadString(scored.Payload, PayloadSnippet),
		}
		if doc.Title == "" && doc.Content == "" && doc.Snippet == "" {
			r.l.Warnf(ctx, "qdrant repository: point %v has no text payload", scored.ID)
			continue
		}
		docs = append(docs, doc)
	}

	r.l.Infof(ctx, "qdrant repository: found %d documents", len(docs))
	return docs, nil
}

func payloadString(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}
