// Package store keeps the current game of each web session.
//
// Only one game per session is held: starting a new game overwrites the
// previous one, so no history survives a restart.
package store

import (
	"context"
	"errors"

	"github.com/robalobadob/wordle/apps/tiles/internal/game"
)

// ErrNotFound is returned by Get for sessions without a game.
var ErrNotFound = errors.New("store: session not found")

// Store defines the persistence interface for session games.
type Store interface {
	// Save persists or replaces the game for session id.
	Save(ctx context.Context, id string, s game.State) error

	// Get retrieves the game for session id, or ErrNotFound.
	Get(ctx context.Context, id string) (game.State, error)

	// Delete forgets session id. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases underlying resources.
	Close() error
}

// Open selects a backend from dsn: "" or "memory" yields the in-memory
// store, anything else is treated as a SQLite path.
func Open(dsn string) (Store, error) {
	if dsn == "" || dsn == "memory" {
		return NewMemoryStore(), nil
	}
	return OpenSQLite(dsn)
}
