// Package cache is the generational read-through cache in front of the app
// shell and the upstream APIs. It mirrors a service-worker cache lifecycle:
// a named generation is installed from a manifest, activation purges every
// older generation, and fetches are answered cache-first with the shell root
// as the offline fallback.
package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// State is the lifecycle position of a cache generation.
type State int

const (
	StateUninstalled State = iota
	StateInstalling
	StateWaiting
	StateActive
)

func (s State) String() string {
	switch s {
	case StateUninstalled:
		return "uninstalled"
	case StateInstalling:
		return "installing"
	case StateWaiting:
		return "waiting"
	case StateActive:
		return "active"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Backend stores cache entries grouped into named generations.
type Backend interface {
	Get(ctx context.Context, generation, key string) ([]byte, bool, error)
	Put(ctx context.Context, generation, key string, value []byte) error
	Generations(ctx context.Context) ([]string, error)
	DropGeneration(ctx context.Context, generation string) error
}

// Origin produces the authoritative content for a key on a cache miss.
// cacheable reports whether the content may be stored (a 200, same-origin
// response in service-worker terms).
type Origin interface {
	Fetch(ctx context.Context, key string) (body []byte, cacheable bool, err error)
}

// Layer ties one generation name to a backend and an origin.
type Layer struct {
	mu         sync.Mutex
	state      State
	backend    Backend
	origin     Origin
	generation string
	manifest   []string
	shellRoot  string
}

// New builds a Layer for the given generation. manifest lists the shell keys
// precached on Install; shellRoot is the key served when the origin is
// unreachable.
func New(backend Backend, origin Origin, generation string, manifest []string, shellRoot string) *Layer {
	return &Layer{
		state:      StateUninstalled,
		backend:    backend,
		origin:     origin,
		generation: generation,
		manifest:   manifest,
		shellRoot:  shellRoot,
	}
}

// Generation returns the layer's generation name.
func (l *Layer) Generation() string { return l.generation }

// State returns the current lifecycle state.
func (l *Layer) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Install precaches the shell manifest into this generation. All-or-nothing:
// a single failed entry fails the installation and the layer stays
// uninstalled. On success the layer is waiting for Activate.
func (l *Layer) Install(ctx context.Context) error {
	l.mu.Lock()
	if l.state != StateUninstalled {
		state := l.state
		l.mu.Unlock()
		return fmt.Errorf("install from state %s", state)
	}
	l.state = StateInstalling
	l.mu.Unlock()

	for _, key := range l.manifest {
		body, cacheable, err := l.origin.Fetch(ctx, key)
		if err == nil && !cacheable {
			err = fmt.Errorf("shell entry %s is not cacheable", key)
		}
		if err == nil {
			err = l.backend.Put(ctx, l.generation, key, body)
		}
		if err != nil {
			l.mu.Lock()
			l.state = StateUninstalled
			l.mu.Unlock()
			return fmt.Errorf("installing %s into %s: %w", key, l.generation, err)
		}
	}

	l.mu.Lock()
	l.state = StateWaiting
	l.mu.Unlock()
	log.Info().Str("generation", l.generation).Int("entries", len(l.manifest)).Msg("cache generation installed")
	return nil
}

// Activate makes this generation the only one: every other generation is
// dropped, then the layer starts answering fetches. Stale generations that
// fail to drop are logged and skipped; activation still completes.
func (l *Layer) Activate(ctx context.Context) error {
	l.mu.Lock()
	if l.state != StateWaiting {
		state := l.state
		l.mu.Unlock()
		return fmt.Errorf("activate from state %s", state)
	}
	l.mu.Unlock()

	names, err := l.backend.Generations(ctx)
	if err != nil {
		return fmt.Errorf("listing cache generations: %w", err)
	}
	for _, name := range names {
		if name == l.generation {
			continue
		}
		if err := l.backend.DropGeneration(ctx, name); err != nil {
			log.Error().Err(err).Str("generation", name).Msg("failed to drop stale cache generation")
			continue
		}
		log.Info().Str("generation", name).Msg("dropped stale cache generation")
	}

	l.mu.Lock()
	l.state = StateActive
	l.mu.Unlock()
	log.Info().Str("generation", l.generation).Msg("cache generation active")
	return nil
}

// Fetch answers a request cache-first. A miss goes to the origin; cacheable
// origin bodies are copied into the generation before being returned. When
// the origin itself is unreachable the cached shell root is served instead.
func (l *Layer) Fetch(ctx context.Context, key string) ([]byte, error) {
	if body, ok := l.Lookup(ctx, key); ok {
		return body, nil
	}

	body, cacheable, err := l.origin.Fetch(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("origin fetch failed, serving shell fallback")
		if shell, ok := l.Lookup(ctx, l.shellRoot); ok {
			return shell, nil
		}
		return nil, fmt.Errorf("fetching %s: %w", key, err)
	}

	if cacheable {
		// The caller keeps the original; the backend gets its own copy so
		// neither side can mutate the other's bytes.
		stored := make([]byte, len(body))
		copy(stored, body)
		l.Store(ctx, key, stored)
	}
	return body, nil
}

// Lookup reads a key from the current generation. Backend errors are logged
// and reported as misses so callers fall through to the origin.
func (l *Layer) Lookup(ctx context.Context, key string) ([]byte, bool) {
	body, ok, err := l.backend.Get(ctx, l.generation, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("cache read failed")
		return nil, false
	}
	return body, ok
}

// Store writes a key into the current generation, best effort. Overwrites
// are harmless: each put is independent and idempotent.
func (l *Layer) Store(ctx context.Context, key string, value []byte) {
	if err := l.backend.Put(ctx, l.generation, key, value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("cache write failed")
	}
}
