package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/tiles/internal/game"
)

type fixedWord string

func (f fixedWord) RandomAnswer() string { return string(f) }

func play(s game.State, keys ...string) game.State {
	for _, k := range keys {
		s = s.HandleKey(k)
	}
	return s
}

// backends runs fn against every Store implementation.
func backends(t *testing.T, fn func(t *testing.T, st Store)) {
	t.Run("memory", func(t *testing.T) {
		st, err := Open("memory")
		require.NoError(t, err)
		defer st.Close()
		fn(t, st)
	})
	t.Run("sqlite", func(t *testing.T) {
		st, err := OpenSQLite(":memory:")
		require.NoError(t, err)
		defer st.Close()
		fn(t, st)
	})
}

func TestStoreRoundTrip(t *testing.T) {
	backends(t, func(t *testing.T, st Store) {
		ctx := context.Background()
		g := play(game.Start(fixedWord("crane")), "s", "l", "a", "t", "e", game.KeyEnter, "c", "r")

		require.NoError(t, st.Save(ctx, "abc", g))
		got, err := st.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, g, got)
	})
}

func TestStoreReplacesGame(t *testing.T) {
	backends(t, func(t *testing.T, st Store) {
		ctx := context.Background()
		require.NoError(t, st.Save(ctx, "abc", game.Start(fixedWord("crane"))))
		next := game.Start(fixedWord("slate"))
		require.NoError(t, st.Save(ctx, "abc", next))

		got, err := st.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, next, got)
	})
}

func TestStoreMissingAndDelete(t *testing.T) {
	backends(t, func(t *testing.T, st Store) {
		ctx := context.Background()
		_, err := st.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, st.Save(ctx, "abc", game.Start(fixedWord("crane"))))
		require.NoError(t, st.Delete(ctx, "abc"))
		_, err = st.Get(ctx, "abc")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, st.Delete(ctx, "abc"))
	})
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "tiles.db")
	g := play(game.Start(fixedWord("crane")), "c", "r", "a", "n", "e", game.KeyEnter)

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, "abc", g))
	require.NoError(t, st.Close())

	st, err = Open(path)
	require.NoError(t, err)
	defer st.Close()
	got, err := st.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, game.StatusWon, got.Status())
	assert.Equal(t, g, got)
}

func TestSQLiteRejectsCorruptRow(t *testing.T) {
	ctx := context.Background()
	st, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer st.Close()

	_, err = st.(*sqliteStore).db.Exec(
		`INSERT INTO sessions (id, answer, guesses, buffer, updated_at) VALUES ('bad', 'toolong', '[]', '', '')`)
	require.NoError(t, err)

	_, err = st.Get(ctx, "bad")
	assert.ErrorIs(t, err, game.ErrInvalidSnapshot)
}
