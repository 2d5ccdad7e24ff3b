package feed

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/productadvisor/backend/internal/domain"
)

// Client retrieves raw feed documents over HTTP(S)
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new feed fetcher
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch downloads the feed at sourceURL and returns its raw bytes.
// Any transport failure or non-2xx status maps to domain.ErrFetchFailed.
func (c *Client) Fetch(ctx context.Context, sourceURL string) ([]byte, error) {
	log.Printf("[feed] Fetch called with url: %q", sourceURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", "ProductAdvisor/1.0")
	req.Header.Set("Accept", "text/csv, text/plain, application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[feed] Request error: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Printf("[feed] Non-success status %d for url: %q", resp.StatusCode, sourceURL)
		return nil, fmt.Errorf("%w: status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrFetchFailed, err)
	}

	log.Printf("[feed] Fetched %d bytes from %q", len(body), sourceURL)
	return body, nil
}
