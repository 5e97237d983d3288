package dedup

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 10 * time.Minute

// MemoryStore хранит идентичности в памяти процесса.
// ttl == 0: записи живут до рестарта.
type MemoryStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	return &MemoryStore{
		cache: cache.New(ttl, memoryCleanupInterval),
		ttl:   ttl,
	}
}

func (s *MemoryStore) Claim(_ context.Context, identity string) (bool, error) {
	// Add возвращает ошибку, если ключ уже есть и не истёк
	if err := s.cache.Add(identity, struct{}{}, s.ttl); err != nil {
		return false, nil //nolint:nilerr
	}

	return true, nil
}

func (s *MemoryStore) Has(_ context.Context, identity string) (bool, error) {
	_, ok := s.cache.Get(identity)
	return ok, nil
}

func (s *MemoryStore) Len() int {
	return s.cache.ItemCount()
}
