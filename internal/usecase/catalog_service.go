package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/productadvisor/backend/internal/domain"
	"github.com/productadvisor/backend/internal/infrastructure/feed"
)

// DefaultMaxRecords caps the working catalog when no cap is configured
const DefaultMaxRecords = 100

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL         time.Duration
	MaxRecords       int
	DefaultDelimiter rune
}

// CatalogService owns the session catalog: it ingests feeds into the
// normalized, capped product sequence and tracks the status indicator.
type CatalogService struct {
	fetcher          domain.FeedFetcher
	cache            domain.CatalogCache
	cacheTTL         time.Duration
	maxRecords       int
	defaultDelimiter rune

	loading atomic.Bool

	mu       sync.RWMutex
	products []domain.Product
	status   domain.CatalogStatus
}

// NewCatalogService creates a catalog service with dependencies
func NewCatalogService(fetcher domain.FeedFetcher, cache domain.CatalogCache, config CatalogServiceConfig) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}
	maxRecords := config.MaxRecords
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}
	defaultDelimiter := config.DefaultDelimiter
	if defaultDelimiter == 0 {
		defaultDelimiter = ','
	}

	return &CatalogService{
		fetcher:          fetcher,
		cache:            cache,
		cacheTTL:         cacheTTL,
		maxRecords:       maxRecords,
		defaultDelimiter: defaultDelimiter,
		status:           domain.CatalogStatus{State: domain.CatalogIdle},
	}
}

// Ingest loads the feed at sourceURL into the session catalog.
// Flow: check cache -> fetch -> parse -> resolve fields -> filter ->
// infer on zero matches -> cap -> project. A second concurrent load is
// rejected, not queued.
func (s *CatalogService) Ingest(ctx context.Context, sourceURL string, delimiter rune, maxRecords int) ([]domain.Product, error) {
	if sourceURL == "" {
		return nil, fmt.Errorf("%w: feed URL is empty", domain.ErrInvalidRequest)
	}
	if delimiter == 0 {
		delimiter = s.defaultDelimiter
	}
	if maxRecords <= 0 {
		maxRecords = s.maxRecords
	}

	if !s.loading.CompareAndSwap(false, true) {
		return nil, domain.ErrBusy
	}
	defer s.loading.Store(false)

	s.setStatus(domain.CatalogStatus{State: domain.CatalogLoading})

	products, err := s.ingest(ctx, sourceURL, delimiter, maxRecords)
	if err != nil {
		s.setStatus(domain.CatalogStatus{State: domain.CatalogError, Message: err.Error()})
		return nil, err
	}

	s.mu.Lock()
	s.products = products
	s.status = domain.CatalogStatus{State: domain.CatalogReady, Count: len(products)}
	s.mu.Unlock()

	log.Printf("[catalog] Loaded %d products from %q", len(products), sourceURL)
	return products, nil
}

func (s *CatalogService) ingest(ctx context.Context, sourceURL string, delimiter rune, maxRecords int) ([]domain.Product, error) {
	cacheKey := fmt.Sprintf("catalog:%s:%c:%d", sourceURL, delimiter, maxRecords)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
			log.Printf("[catalog] Cache hit for %q (%d products)", sourceURL, len(cached))
			return cached, nil
		}
	}

	raw, err := s.fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return nil, err
	}

	var table *feed.Table
	if feed.IsWorkbook(raw) {
		table, err = feed.ParseWorkbook(raw)
	} else {
		table, err = feed.ParseDelimited(raw, delimiter)
	}
	if err != nil {
		return nil, err
	}

	products, err := Normalize(table, maxRecords)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, products, s.cacheTTL); err != nil {
			log.Printf("[catalog] Failed to cache %q: %v", sourceURL, err)
		}
	}

	return products, nil
}

// Normalize turns a parsed feed table into the capped product sequence.
// Direct resolution runs first; when it matches no rows, header inference
// rebinds identifier/title/description and the filter runs again. Zero rows
// after both passes is a loud failure, never an empty success.
func Normalize(table *feed.Table, maxRecords int) ([]domain.Product, error) {
	fields := ResolveFields(table.Headers)
	kept := filterRecords(table.Records, fields)

	if len(kept) == 0 {
		fields = InferFields(table.Headers, fields)
		kept = filterRecords(table.Records, fields)
	}
	if len(kept) == 0 {
		return nil, domain.ErrNoValidRecords
	}

	if len(kept) > maxRecords {
		kept = kept[:maxRecords]
	}

	products := make([]domain.Product, 0, len(kept))
	for _, record := range kept {
		products = append(products, ProjectRecord(record, fields))
	}
	return products, nil
}

// filterRecords keeps rows where both identifier and title resolve to
// non-empty cells, preserving source order.
func filterRecords(records []domain.RawRecord, fields domain.FieldMap) []domain.RawRecord {
	if fields.Identifier == "" || fields.Title == "" {
		return nil
	}

	var kept []domain.RawRecord
	for _, record := range records {
		if record.Value(fields.Identifier) == "" || record.Value(fields.Title) == "" {
			continue
		}
		kept = append(kept, record)
	}
	return kept
}

// Products returns the current session catalog
func (s *CatalogService) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]domain.Product, len(s.products))
	copy(products, s.products)
	return products
}

// Status returns the presentation-facing catalog indicator
func (s *CatalogService) Status() domain.CatalogStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *CatalogService) setStatus(status domain.CatalogStatus) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}
