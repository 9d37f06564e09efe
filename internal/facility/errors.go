package facility

import "errors"

// Domain-specific errors for the facility package.
var (
	ErrInvalidCoordinate = errors.New("coordinate is out of range")
	ErrInvalidRadius     = errors.New("radius must be in (0, 50] km")
	ErrUpstreamService   = errors.New("places service failed")
	// ErrMalformedPlace marks a provider entry that was dropped. It is logged, never returned.
	ErrMalformedPlace = errors.New("malformed place")
)
