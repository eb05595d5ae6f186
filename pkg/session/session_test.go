package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHeaders(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		s := New(NewMemoryStore())
		assert.Equal(t, map[string]string{"accept": "application/json"}, s.AuthHeaders())
	})

	t.Run("with token", func(t *testing.T) {
		s := New(NewMemoryStore())
		require.NoError(t, s.Initialize(context.Background(), " abc "))
		assert.Equal(t, map[string]string{
			"accept":        "application/json",
			"authorization": "Bearer abc",
		}, s.AuthHeaders())
	})

	t.Run("empty initialize keeps previous token", func(t *testing.T) {
		s := New(NewMemoryStore())
		require.NoError(t, s.SetToken("old"))
		require.NoError(t, s.Initialize(context.Background(), ""))
		token, ok := s.Token()
		assert.True(t, ok)
		assert.Equal(t, "old", token)
	})

	t.Run("cleared", func(t *testing.T) {
		s := New(nil)
		require.NoError(t, s.SetToken("abc"))
		require.NoError(t, s.Clear())
		_, ok := s.Token()
		assert.False(t, ok)
	})
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	_, ok, err := store.Get(TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(TokenKey, "abc"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	v, ok, err := NewFileStore(path).Get(TokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	require.NoError(t, store.Delete(TokenKey))
	_, ok, err = store.Get(TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	s := New(NewFileStore(path))
	_, ok := s.Token()
	assert.False(t, ok)
	assert.NotContains(t, s.AuthHeaders(), "authorization")
}
