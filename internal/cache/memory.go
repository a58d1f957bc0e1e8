package cache

import (
	"context"
	"sync"
)

// MemoryBackend is an in-process Backend used in tests and as a last-resort
// fallback when Redis is not configured.
type MemoryBackend struct {
	mu          sync.RWMutex
	generations map[string]map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{generations: make(map[string]map[string][]byte)}
}

func (b *MemoryBackend) Get(_ context.Context, generation, key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	entries, ok := b.generations[generation]
	if !ok {
		return nil, false, nil
	}
	val, ok := entries[key]
	return val, ok, nil
}

func (b *MemoryBackend) Put(_ context.Context, generation, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries, ok := b.generations[generation]
	if !ok {
		entries = make(map[string][]byte)
		b.generations[generation] = entries
	}
	entries[key] = value
	return nil
}

func (b *MemoryBackend) Generations(_ context.Context) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.generations))
	for name := range b.generations {
		names = append(names, name)
	}
	return names, nil
}

func (b *MemoryBackend) DropGeneration(_ context.Context, generation string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.generations, generation)
	return nil
}
