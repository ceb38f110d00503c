package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavePhotoWritesFileAndReturnsRelPath(t *testing.T) {
	store := NewPublicStore(t.TempDir(), "http://localhost:8000/storage")

	relPath, err := store.SavePhoto(strings.NewReader("fake-image-bytes"), "banner.JPG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(relPath, "photos/"))
	assert.True(t, strings.HasSuffix(relPath, ".jpg"))

	content, err := os.ReadFile(filepath.Join(storeRoot(store), filepath.FromSlash(relPath)))
	require.NoError(t, err)
	assert.Equal(t, "fake-image-bytes", string(content))
}

func TestDeleteMissingFileIsNoError(t *testing.T) {
	store := NewPublicStore(t.TempDir(), "")
	require.NoError(t, store.Delete("photos/does-not-exist.jpg"))
	require.NoError(t, store.Delete(""))
}

func TestDeleteRejectsPathTraversal(t *testing.T) {
	store := NewPublicStore(t.TempDir(), "")
	assert.Error(t, store.Delete("../outside.txt"))
	assert.Error(t, store.Delete("/etc/passwd"))
}

func TestDeleteRemovesSavedFile(t *testing.T) {
	store := NewPublicStore(t.TempDir(), "")

	relPath, err := store.SavePhoto(strings.NewReader("bytes"), "a.png")
	require.NoError(t, err)
	require.NoError(t, store.Delete(relPath))

	_, err = os.Stat(filepath.Join(storeRoot(store), filepath.FromSlash(relPath)))
	assert.True(t, os.IsNotExist(err))
}

func TestURL(t *testing.T) {
	store := NewPublicStore(t.TempDir(), "http://localhost:8000/storage/")
	assert.Equal(t, "http://localhost:8000/storage/photos/a.png", store.URL("photos/a.png"))
	assert.Equal(t, "", store.URL(""))

	bare := NewPublicStore(t.TempDir(), "")
	assert.Equal(t, "/photos/a.png", bare.URL("photos/a.png"))
}

func storeRoot(s *PublicStore) string {
	return s.root
}
