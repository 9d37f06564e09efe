package triage

import "context"

// UseCase defines the business logic interface for the triage domain.
type UseCase interface {
	// Run processes one user turn against the caller-owned history and returns the shaped reply.
	Run(ctx context.Context, input RunInput) (RunOutput, error)
}
