package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	t.Run("missing record is not an error", func(t *testing.T) {
		body, ok, err := fs.Get(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, body)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		require.NoError(t, fs.Set(ctx, "realnest_test", []byte(`[{"id":"x"}]`)))
		body, ok, err := fs.Get(ctx, "realnest_test")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `[{"id":"x"}]`, string(body))
	})

	t.Run("set replaces previous body", func(t *testing.T) {
		require.NoError(t, fs.Set(ctx, "realnest_test", []byte(`[]`)))
		body, _, err := fs.Get(ctx, "realnest_test")
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(body))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, fs.Delete(ctx, "realnest_test"))
		require.NoError(t, fs.Delete(ctx, "realnest_test"))
		_, ok, err := fs.Get(ctx, "realnest_test")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestNewFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFileStore(dir)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
