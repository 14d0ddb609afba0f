package store

import (
	"context"
	"sync"

	"biliticket/tickethub/internal/model"
)

// SharedStore guards one engine with a reader/writer lock. The handle
// is shared by pointer across any number of goroutines; it needs no
// shutdown and lives as long as its last reference.
type SharedStore struct {
	mu     sync.RWMutex
	engine *engine
}

func NewSharedStore() *SharedStore {
	return &SharedStore{engine: newEngine()}
}

func (s *SharedStore) Insert(_ context.Context, ticket model.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.insert(ticket)
	return nil
}

func (s *SharedStore) Get(_ context.Context, id model.TicketID) (model.Ticket, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ticket, ok := s.engine.get(id)
	return ticket, ok, nil
}

func (s *SharedStore) Patch(_ context.Context, id model.TicketID, patch model.TicketPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.patch(id, patch)
}
