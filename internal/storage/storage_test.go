package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "cart:user-1", `{"version":1}`))
	value, err := s.Get(ctx, "cart:user-1")
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, value)

	require.NoError(t, s.Delete(ctx, "cart:user-1"))
	_, err = s.Get(ctx, "cart:user-1")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting a missing key is not an error
	assert.NoError(t, s.Delete(ctx, "cart:user-1"))
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "cart:user-1", "snapshot"))
	value, err := s.Get(ctx, "cart:user-1")
	require.NoError(t, err)
	assert.Equal(t, "snapshot", value)

	// Overwrite
	require.NoError(t, s.Set(ctx, "cart:user-1", "snapshot-2"))
	value, err = s.Get(ctx, "cart:user-1")
	require.NoError(t, err)
	assert.Equal(t, "snapshot-2", value)

	require.NoError(t, s.Delete(ctx, "cart:user-1"))
	_, err = s.Get(ctx, "cart:user-1")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, s.Delete(ctx, "cart:user-1"))
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "wishlist:user-1", "saved"))

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	value, err := second.Get(ctx, "wishlist:user-1")
	require.NoError(t, err)
	assert.Equal(t, "saved", value)
}

func TestFileStore_EscapesKeySeparators(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "cart:user/1", "x"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "/")
	assert.Equal(t, ".json", filepath.Ext(entries[0].Name()))
}

func TestFileStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
