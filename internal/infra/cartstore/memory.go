package cartstore

import (
	"context"
	"sync"

	"tourbook/internal/domain/cart"
)

// MemoryStore is the in-process fallback used by tests and local runs
// without Redis. Same wholesale-replacement contract as RedisStore.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]cart.Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]cart.Booking)}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]cart.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.carts[key]
	if !ok {
		return nil, nil
	}
	out := make([]cart.Booking, len(items))
	copy(out, items)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, items []cart.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(items) == 0 {
		delete(s.carts, key)
		return nil
	}
	stored := make([]cart.Booking, len(items))
	copy(stored, items)
	s.carts[key] = stored
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, key)
	return nil
}
