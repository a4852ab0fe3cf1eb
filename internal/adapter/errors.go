package adapter

import "errors"

// Sentinel errors returned by [Generator] implementations.
var (
	// ErrMissingAPIKey is returned before any network call when the adapter
	// was built without a credential.
	ErrMissingAPIKey = errors.New("analyzer API key is not configured")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limited")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrUnexpectedResponse is returned when a 2xx reply cannot be decoded.
	ErrUnexpectedResponse = errors.New("unexpected response")

	ErrUnknownProvider = errors.New("unknown analyzer provider")
	ErrMissingBaseURL  = errors.New("analyzer base URL is not configured")
)
