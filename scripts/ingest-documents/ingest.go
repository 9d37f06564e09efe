package main

import (
	"context"
	"fmt"

	qdrantRepo "github.com/devkan/FirstAidVox/internal/triage/repository/qdrant"
	"github.com/devkan/FirstAidVox/pkg/log"
	pkgQdrant "github.com/devkan/FirstAidVox/pkg/qdrant"
	"github.com/devkan/FirstAidVox/pkg/voyage"
)

// Voyage accepts at most 128 inputs per request.
const embedBatchSize = 128

type pointStore interface {
	UpsertPoints(ctx context.Context, collectionName string, req pkgQdrant.UpsertPointsRequest) error
}

type ingester struct {
	embedder       voyage.IVoyage
	store          pointStore
	collectionName string
	l              log.Logger
}

// ingest embeds and upserts chunks batch by batch. It returns how many chunks
// were stored before the first failure.
func (i *ingester) ingest(ctx context.Context, chunks []chunk) (int, error) {
	stored := 0
	for start := 0; start < len(chunks); start += embedBatchSize {
		batch := chunks[start:min(start+embedBatchSize, len(chunks))]

		texts := make([]string, len(batch))
		for j, c := range batch {
			texts[j] = c.Title + "\n\n" + c.Content
		}
		vectors, err := i.embedder.Embed(ctx, texts, voyage.InputTypeDocument)
		if err != nil {
			return stored, fmt.Errorf("embed batch at %d: %w", start, err)
		}

		points := make([]pkgQdrant.Point, len(batch))
		for j, c := range batch {
			points[j] = pkgQdrant.Point{
				ID:     c.ID,
				Vector: vectors[j],
				Payload: map[string]any{
					qdrantRepo.PayloadTitle:   c.Title,
					qdrantRepo.PayloadContent: c.Content,
					qdrantRepo.PayloadSnippet: c.Snippet,
					qdrantRepo.PayloadSource:  c.Source,
				},
			}
		}
		if err := i.store.UpsertPoints(ctx, i.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
			return stored, fmt.Errorf("upsert batch at %d: %w", start, err)
		}

		stored += len(batch)
		i.l.Infof(ctx, "Stored %d/%d chunks", stored, len(chunks))
	}
	return stored, nil
}
