package entity

import "errors"

// Standard domain errors
var (
	ErrInvalidRequest      = errors.New("invalid request parameters")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrRateLimited         = errors.New("upstream rate limit hit (429)")
	ErrMalformedAnswer     = errors.New("generation answer has no parseable JSON payload")
	ErrInternalServer      = errors.New("internal server error")
)
