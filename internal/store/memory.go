// internal/store/memory.go
//
// In-memory implementation of Store.
//
// Characteristics:
//   - Stores game.State values keyed by session ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/wordle/apps/tiles/internal/game"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games
	games map[string]game.State // keyed by session ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]game.State)}
}

// Save adds or replaces the game in the map. States are values, so the
// caller cannot mutate what is stored.
func (m *memory) Save(ctx context.Context, id string, s game.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[id] = s
	return nil
}

// Get looks up a game by session ID.
func (m *memory) Get(ctx context.Context, id string) (game.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.games[id]; ok {
		return s, nil
	}
	return game.State{}, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

func (m *memory) Close() error { return nil }
