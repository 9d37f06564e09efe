package facility

import "context"

// UseCase defines the business logic interface for the facility domain.
type UseCase interface {
	// Search returns up to MaxResults hospitals and pharmacies around the input center.
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
}
