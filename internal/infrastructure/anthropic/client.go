package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/productadvisor/backend/internal/domain"
)

const (
	// apiVersion is the protocol-version marker required by the messages API
	apiVersion = "2023-06-01"

	// DefaultModel and DefaultMaxTokens match the advisor's fixed request shape
	DefaultModel     = "claude-3-haiku-20240307"
	DefaultMaxTokens = 1000
)

// Client handles communication with the Anthropic messages API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new messages API client. The limiter only paces
// outgoing calls; a rejected or failed call is never retried.
func NewClient(apiKey, baseURL string) *Client {
	// Keep comfortably under the entry-tier quota of 50 requests/min
	limiter := rate.NewLimiter(rate.Limit(0.8), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		model:       DefaultModel,
		maxTokens:   DefaultMaxTokens,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// messagesRequest is the body of a POST /v1/messages call
type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the success payload; the reply is the first text segment
type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// errorResponse is the error payload shape
type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete issues one blocking request-response exchange: the system
// instructions plus a single user turn. No history is replayed.
func (c *Client) Complete(ctx context.Context, system, userText string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	reqBody := messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    system,
		Messages: []message{
			{Role: "user", Content: userText},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/messages", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	if c.debug {
		log.Printf("[anthropic] POST %s model=%s max_tokens=%d system=%d bytes",
			endpoint, c.model, c.maxTokens, len(system))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[anthropic] Transport error: %v", err)
		return "", fmt.Errorf("%w: %v", domain.ErrChatUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", domain.ErrChatUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[anthropic] API error - Status: %d, Body: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("%w: %s", domain.ErrChatAPIFailure, extractErrorMessage(body))
	}

	var msgResp messagesResponse
	if err := json.Unmarshal(body, &msgResp); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if len(msgResp.Content) == 0 || msgResp.Content[0].Text == "" {
		log.Printf("[anthropic] Response carries no text segment: %s", string(body))
		return "", fmt.Errorf("%w: no text segment", domain.ErrMalformedResponse)
	}

	return msgResp.Content[0].Text, nil
}

// extractErrorMessage pulls the human-readable message out of an error
// payload, falling back to a generic string when the shape is unexpected.
func extractErrorMessage(body []byte) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	return "unknown API error"
}
