package memory

import (
	"context"
	"sync"

	"idverify/pkg/domain"
	audit "idverify/pkg/platform/audit"
)

// InMemoryStore keeps audit events in memory, grouped by user. It backs unit
// tests and single-process deployments; durable sinks hang off the publisher.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[domain.UserID][]audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		events: make(map[domain.UserID][]audit.Event),
	}
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.UserID] = append(s.events[event.UserID], event)
	return nil
}

func (s *InMemoryStore) List(_ context.Context, userID domain.UserID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := s.events[userID]
	out := make([]audit.Event, len(events))
	copy(out, events)
	return out, nil
}
