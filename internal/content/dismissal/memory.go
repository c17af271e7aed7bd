package dismissal

import (
	"context"
	"sync"
)

// MemoryStore keeps dismissals in process memory. Used in tests and when no
// database path is configured.
type MemoryStore struct {
	mu        sync.RWMutex
	dismissed map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{dismissed: make(map[string][]string)}
}

func (s *MemoryStore) Dismiss(_ context.Context, clientID, popupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.dismissed[clientID] {
		if id == popupID {
			return nil
		}
	}
	s.dismissed[clientID] = append(s.dismissed[clientID], popupID)
	return nil
}

func (s *MemoryStore) Dismissed(_ context.Context, clientID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.dismissed[clientID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
