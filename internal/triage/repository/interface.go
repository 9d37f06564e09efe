package repository

import (
	"context"

	"github.com/devkan/FirstAidVox/internal/triage"
)

// KnowledgeRepository retrieves reference documents for prompt context.
type KnowledgeRepository interface {
	SearchDocuments(ctx context.Context, opt SearchDocumentsOptions) ([]triage.Document, error)
}
