package domain

import (
	"context"
	"time"
)

// FeedFetcher retrieves the raw bytes of a catalog feed
type FeedFetcher interface {
	Fetch(ctx context.Context, sourceURL string) ([]byte, error)
}

// ChatClient defines the single exchange with the chat completion collaborator.
// One blocking round trip per call; no history, no retry, no streaming.
type ChatClient interface {
	Complete(ctx context.Context, system, userText string) (string, error)
}

// CatalogCache memoizes parsed catalogs per feed within a session
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]Product, error)
	Set(ctx context.Context, key string, products []Product, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// TranscriptStore is the append-only transcript backing the message list
type TranscriptStore interface {
	Append(ctx context.Context, role Role, text string) (ChatTurn, error)
	List(ctx context.Context) ([]ChatTurn, error)
	Clear(ctx context.Context) error
}
