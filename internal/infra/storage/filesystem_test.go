package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Filesystem {
	t.Helper()
	fs, err := NewFilesystem(t.TempDir(), "http://localhost:8080/")
	require.NoError(t, err)
	return fs
}

func TestFilesystem_PutAndPublicURL(t *testing.T) {
	fs := newTestStore(t)

	url, err := fs.Put("7/rec-1_123_abcd.jpg", []byte("photo-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/7/rec-1_123_abcd.jpg", url)

	data, err := os.ReadFile(filepath.Join(fs.basePath, "7", "rec-1_123_abcd.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("photo-bytes"), data)
}

func TestFilesystem_PutOverwritesAtomically(t *testing.T) {
	fs := newTestStore(t)

	_, err := fs.Put("k.bin", []byte("one"))
	require.NoError(t, err)
	_, err = fs.Put("k.bin", []byte("two"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(fs.basePath, "k.bin"))
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), data)

	// No stray temp file left behind.
	_, err = os.Stat(filepath.Join(fs.basePath, "k.bin.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestFilesystem_RejectsUnsafeKeys(t *testing.T) {
	fs := newTestStore(t)

	for _, key := range []string{"", "/abs", "../escape", "a/../../b", "a//b"} {
		_, err := fs.Put(key, []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestFilesystem_StableReference(t *testing.T) {
	fs := newTestStore(t)

	assert.Equal(t, fs.PublicURL("a/b.png"), fs.PublicURL("a/b.png"))
}
