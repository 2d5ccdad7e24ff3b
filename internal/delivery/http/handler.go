package http

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/productadvisor/backend/internal/domain"
	"github.com/productadvisor/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog *usecase.CatalogService
	advisor *usecase.AdvisorService
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog *usecase.CatalogService, advisor *usecase.AdvisorService) *Handler {
	return &Handler{
		catalog: catalog,
		advisor: advisor,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "productadvisor-backend",
		"version": "1.0.0",
	})
}

// LoadCatalogRequest is the body of a catalog load call
type LoadCatalogRequest struct {
	URL        string `json:"url" binding:"required"`
	Delimiter  string `json:"delimiter,omitempty"`
	MaxRecords int    `json:"max_records,omitempty"`
}

// LoadCatalog ingests a feed URL into the session catalog
func (h *Handler) LoadCatalog(c *gin.Context) {
	var req LoadCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	var delimiter rune
	if req.Delimiter != "" {
		if utf8.RuneCountInString(req.Delimiter) != 1 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "delimiter must be a single character"})
			return
		}
		delimiter, _ = firstRune(req.Delimiter)
	}

	products, err := h.catalog.Ingest(c.Request.Context(), req.URL, delimiter, req.MaxRecords)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.advisor.AnnounceCatalog(c.Request.Context(), len(products))

	c.JSON(http.StatusOK, gin.H{
		"count":  len(products),
		"status": h.catalog.Status(),
	})
}

// CatalogStatus returns the catalog-status indicator
func (h *Handler) CatalogStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Status())
}

// SendMessageRequest is the body of a chat message call
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// SendMessage forwards a user question to the advisor and returns the reply
func (h *Handler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	reply, err := h.advisor.Ask(c.Request.Context(), req.Message)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// GetTranscript returns the visible message list in order
func (h *Handler) GetTranscript(c *gin.Context) {
	turns, err := h.advisor.Transcript(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"turns": turns})
}

// ClearTranscript resets the visible message list
func (h *Handler) ClearTranscript(c *gin.Context) {
	if err := h.advisor.ClearTranscript(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// renderError maps domain errors to HTTP statuses. Every error is surfaced
// with its detail text; none are swallowed.
func (h *Handler) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrParseFailed),
		errors.Is(err, domain.ErrNoValidRecords):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrBusy),
		errors.Is(err, domain.ErrEmptyCatalog):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrFetchFailed),
		errors.Is(err, domain.ErrChatAPIFailure),
		errors.Is(err, domain.ErrChatUnavailable),
		errors.Is(err, domain.ErrMalformedResponse):
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
