package llmprovider

import (
	"context"
	"errors"
	"fmt"
)

// Errors returned by Manager.GenerateContent. Callers match them with errors.Is.
var (
	ErrAllProvidersFailed    = errors.New("llmprovider: every provider in the chain failed")
	ErrNoProvidersConfigured = errors.New("llmprovider: provider chain is empty")
	ErrInvalidRequest        = errors.New("llmprovider: request has no content")
	ErrProviderTimeout       = errors.New("llmprovider: generation deadline exceeded")
)

// ProviderError records which link of the chain produced Err.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func classify(ctx context.Context, provider string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	}
	return &ProviderError{Provider: provider, Err: err}
}
