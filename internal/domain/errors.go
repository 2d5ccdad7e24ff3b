package domain

import "errors"

var (
	// ErrFetchFailed is returned when the feed URL cannot be retrieved
	ErrFetchFailed = errors.New("feed fetch failed")

	// ErrParseFailed is returned when the raw feed text is structurally invalid
	ErrParseFailed = errors.New("feed parse failed")

	// ErrNoValidRecords is returned when no row resolves both an identifier and a title
	ErrNoValidRecords = errors.New("no valid records in feed")

	// ErrBusy is returned when an operation is rejected because another one is in flight
	ErrBusy = errors.New("another request is in flight")

	// ErrChatAPIFailure is returned when the chat API responds with an error payload
	ErrChatAPIFailure = errors.New("chat API request failed")

	// ErrChatUnavailable is returned when the chat API cannot be reached at all
	ErrChatUnavailable = errors.New("chat API unreachable")

	// ErrMalformedResponse is returned when a success payload carries no text segment
	ErrMalformedResponse = errors.New("malformed chat API response")

	// ErrMissingCredential is returned at startup when no API key is configured
	ErrMissingCredential = errors.New("API key is not configured")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrEmptyCatalog is returned when a question arrives before a catalog is loaded
	ErrEmptyCatalog = errors.New("no catalog loaded")

	// ErrCacheMiss is returned when a feed is not found in the catalog cache
	ErrCacheMiss = errors.New("cache miss")
)
