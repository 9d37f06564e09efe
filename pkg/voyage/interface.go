package voyage

import (
	"context"
)

// IVoyage defines the interface for Voyage AI embeddings.
// Implementations are safe for concurrent use.
type IVoyage interface {
	// Embed returns one vector per text, in input order. inputType is
	// InputTypeQuery or InputTypeDocument.
	Embed(ctx context.Context, texts []string, inputType string) ([][]float32, error)
}
