package triage

import "errors"

// Domain-specific errors for the triage package.
var (
	ErrInvalidInput    = errors.New("input text is empty")
	ErrInvalidLocation = errors.New("location is out of range")
	ErrUpstreamTimeout = errors.New("generation backend timed out")
	ErrUpstreamService = errors.New("generation backend failed")
)
