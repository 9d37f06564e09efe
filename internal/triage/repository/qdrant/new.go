// Package qdrant serves knowledge documents from a Qdrant collection embedded with Voyage.
package qdrant

import (
	"github.com/devkan/FirstAidVox/internal/triage/repository"
	pkgLog "github.com/devkan/FirstAidVox/pkg/log"
	pkgQdrant "github.com/devkan/FirstAidVox/pkg/qdrant"
	"github.com/devkan/FirstAidVox/pkg/voyage"
)

// Payload keys written by the ingest script.
const (
	PayloadTitle   = "title"
	PayloadContent = "content"
	PayloadSnippet = "snippet"
	PayloadSource  = "source"
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	scoreThreshold *float64
	l              pkgLog.Logger
}

// New creates a new Qdrant knowledge repository. A zero minScore disables the threshold.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, minScore float64, l pkgLog.Logger) repository.KnowledgeRepository {
	r := &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		l:              l,
	}
	if minScore > 0 {
		r.scoreThreshold = &minScore
	}
	return r
}
