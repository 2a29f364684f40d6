package lock

import (
	"context"
	"sync"

	"github.com/patrickmn/go-cache"
)

// MemoryRegistry keeps one mutex per key in an in-process cache. Suitable for
// a single-instance deployment.
type MemoryRegistry struct {
	mu      sync.Mutex
	mutexes *cache.Cache
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		mutexes: cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

func (r *MemoryRegistry) mutexFor(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.mutexes.Get(key); ok {
		return m.(*sync.Mutex)
	}
	m := &sync.Mutex{}
	r.mutexes.Set(key, m, cache.NoExpiration)
	return m
}

func (r *MemoryRegistry) Acquire(ctx context.Context, key string) (func(), error) {
	m := r.mutexFor(key)

	locked := make(chan struct{})
	go func() {
		m.Lock()
		close(locked)
	}()

	select {
	case <-locked:
		return m.Unlock, nil
	case <-ctx.Done():
		// The goroutine will still take the lock eventually; release it so
		// the mutex is not leaked in a locked state.
		go func() {
			<-locked
			m.Unlock()
		}()
		return nil, ctx.Err()
	}
}
