package transcript

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/productadvisor/backend/internal/domain"
)

// MemoryStore is the append-only in-memory transcript backing the message
// list. Turns keep insertion order; List returns a copy.
type MemoryStore struct {
	turns []domain.ChatTurn
	mutex sync.RWMutex
}

// NewMemoryStore creates an empty transcript store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append records one role-tagged turn and returns it with its assigned ID
func (s *MemoryStore) Append(ctx context.Context, role domain.Role, text string) (domain.ChatTurn, error) {
	turn := domain.ChatTurn{
		ID:        uuid.New().String(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}

	s.mutex.Lock()
	s.turns = append(s.turns, turn)
	s.mutex.Unlock()

	return turn, nil
}

// List returns every turn in insertion order
func (s *MemoryStore) List(ctx context.Context) ([]domain.ChatTurn, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	turns := make([]domain.ChatTurn, len(s.turns))
	copy(turns, s.turns)
	return turns, nil
}

// Clear resets the visible transcript
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mutex.Lock()
	s.turns = nil
	s.mutex.Unlock()
	return nil
}
