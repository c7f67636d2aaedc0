package blobstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Put("a.bin", []byte{1, 2, 3, 4})

	blob, err := store.Open(ctx, "a.bin")
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(4), blob.Size())

	p := make([]byte, 2)
	n, err := blob.ReadAt(p, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{2, 3}, p)

	raw, err := blob.(Mappable).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, raw)

	_, err = store.Open(ctx, "missing.bin")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	src := []byte{9, 9, 9}
	store.Put("b.bin", src)
	src[0] = 0 // must not leak into the store

	blob, err := store.Open(ctx, "b.bin")
	require.NoError(t, err)
	defer blob.Close()

	raw, err := blob.(Mappable).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 9, 9}, raw)
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	content := []byte("local point buffer")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.bin"), content, 0o644))

	store := NewLocalStore(dir)
	blob, err := store.Open(ctx, "c.bin")
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(len(content)), blob.Size())

	raw, err := blob.(Mappable).Bytes()
	require.NoError(t, err)
	assert.Equal(t, content, raw)

	_, err = store.Open(ctx, "missing.bin")
	assert.True(t, errors.Is(err, ErrNotFound))
}
