// Package vertexsearch serves knowledge documents from a Vertex AI Search engine.
package vertexsearch

import (
	"context"

	"github.com/devkan/FirstAidVox/internal/triage/repository"
	pkgLog "github.com/devkan/FirstAidVox/pkg/log"
	pkgVertexSearch "github.com/devkan/FirstAidVox/pkg/vertexsearch"
)

// searcher is satisfied by *pkgVertexSearch.Client.
type searcher interface {
	Search(ctx context.Context, query string, pageSize int) ([]pkgVertexSearch.Document, error)
}

type implRepository struct {
	client searcher
	l      pkgLog.Logger
}

// New creates a knowledge repository backed by Vertex AI Search.
func New(client searcher, l pkgLog.Logger) repository.KnowledgeRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
