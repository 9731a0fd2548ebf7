package cache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"todolist/internal/core/port"
)

type entry struct {
	Count   int
	ResetAt time.Time
}

// MemoryStore counts per-key requests in process memory. Suitable for a
// single instance; multi-instance deployments should use RedisStore.
type MemoryStore struct {
	cache *gocache.Cache
	mutex sync.Mutex
}

func NewMemoryStore() port.CounterStore {
	return &MemoryStore{
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (ms *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	now := time.Now()

	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	if raw, found := ms.cache.Get(key); found {
		e := raw.(entry)

		if now.Before(e.ResetAt) {
			e.Count++
			ms.cache.Set(key, e, gocache.DefaultExpiration)
			return e.Count, e.ResetAt, nil
		}
	}

	e := entry{Count: 1, ResetAt: now.Add(window)}
	ms.cache.Set(key, e, window)

	return e.Count, e.ResetAt, nil
}

func (ms *MemoryStore) Close() error {
	return nil
}
