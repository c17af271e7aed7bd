package dismissal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	ids, err := store.Dismissed(ctx, "client-1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, store.Dismiss(ctx, "client-1", "popup-a"))
	require.NoError(t, store.Dismiss(ctx, "client-1", "popup-b"))
	// Idempotent: repeating a dismissal does not duplicate it.
	require.NoError(t, store.Dismiss(ctx, "client-1", "popup-a"))

	ids, err = store.Dismissed(ctx, "client-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"popup-a", "popup-b"}, ids)

	// Clients are isolated.
	ids, err = store.Dismissed(ctx, "client-2")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	testStore(t, store)
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dismissals.db")
	store, err := NewBoltStore(path)
	require.NoError(t, err)
	defer store.Close()
	testStore(t, store)
}

func TestBoltStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "dismissals.db")

	store, err := NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Dismiss(ctx, "client-1", "popup-a"))
	require.NoError(t, store.Close())

	store, err = NewBoltStore(path)
	require.NoError(t, err)
	defer store.Close()

	ids, err := store.Dismissed(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"popup-a"}, ids)
}

func TestSet(t *testing.T) {
	set := Set([]string{"a", "b"})
	assert.True(t, set["a"])
	assert.True(t, set["b"])
	assert.False(t, set["c"])
}
