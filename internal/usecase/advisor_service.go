package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/productadvisor/backend/internal/domain"
)

// AdvisorServiceConfig holds configuration for the advisor service
type AdvisorServiceConfig struct {
	Brand string
}

// AdvisorService is the query dispatcher: it forwards one user question
// plus the session catalog to the chat collaborator, under a single-flight
// guard. At most one dispatch is in flight; a second is rejected, not queued.
type AdvisorService struct {
	chat       domain.ChatClient
	catalog    *CatalogService
	transcript domain.TranscriptStore
	brand      string

	busy atomic.Bool
}

// NewAdvisorService creates an advisor service with dependencies
func NewAdvisorService(
	chat domain.ChatClient,
	catalog *CatalogService,
	transcript domain.TranscriptStore,
	config AdvisorServiceConfig,
) *AdvisorService {
	brand := config.Brand
	if brand == "" {
		brand = "Odlo"
	}

	return &AdvisorService{
		chat:       chat,
		catalog:    catalog,
		transcript: transcript,
		brand:      brand,
	}
}

// Ask dispatches one user question against the loaded catalog and returns
// the generated reply. The busy flag is cleared on every exit path; every
// failure is also surfaced to the transcript as a system turn.
func (s *AdvisorService) Ask(ctx context.Context, userText string) (string, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return "", fmt.Errorf("%w: message is empty", domain.ErrInvalidRequest)
	}

	products := s.catalog.Products()
	if len(products) == 0 {
		return "", domain.ErrEmptyCatalog
	}

	if !s.busy.CompareAndSwap(false, true) {
		return "", domain.ErrBusy
	}
	defer s.busy.Store(false)

	s.appendTurn(ctx, domain.RoleUser, userText)

	reply, err := s.dispatch(ctx, products, userText)
	if err != nil {
		s.appendTurn(ctx, domain.RoleSystem, fmt.Sprintf("Error: %v", err))
		return "", err
	}

	s.appendTurn(ctx, domain.RoleAssistant, reply)
	return reply, nil
}

func (s *AdvisorService) dispatch(ctx context.Context, products []domain.Product, userText string) (string, error) {
	system, err := BuildSystemPrompt(s.brand, products)
	if err != nil {
		return "", err
	}

	reply, err := s.chat.Complete(ctx, system, userText)
	if err != nil {
		return "", err
	}
	return reply, nil
}

// Busy reports whether a dispatch is currently in flight
func (s *AdvisorService) Busy() bool {
	return s.busy.Load()
}

// Greet seeds the transcript with the startup welcome turn
func (s *AdvisorService) Greet(ctx context.Context) {
	s.appendTurn(ctx, domain.RoleSystem,
		"Welcome to the Product Advisor! Load a product catalog to begin.")
}

// AnnounceCatalog posts the post-load assistant turn
func (s *AdvisorService) AnnounceCatalog(ctx context.Context, count int) {
	s.appendTurn(ctx, domain.RoleAssistant,
		fmt.Sprintf("Product catalog loaded successfully (%d products)! I can now provide personalized product recommendations. How can I help you today?", count))
}

// Transcript returns the visible message list in order
func (s *AdvisorService) Transcript(ctx context.Context) ([]domain.ChatTurn, error) {
	return s.transcript.List(ctx)
}

// ClearTranscript resets the visible message list
func (s *AdvisorService) ClearTranscript(ctx context.Context) error {
	return s.transcript.Clear(ctx)
}

func (s *AdvisorService) appendTurn(ctx context.Context, role domain.Role, text string) {
	if s.transcript == nil {
		return
	}
	if _, err := s.transcript.Append(ctx, role, text); err != nil {
		log.Printf("[advisor] Failed to append %s turn: %v", role, err)
	}
}
