package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndRemoveOriginal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := store.SaveOriginal(strings.NewReader("fake image bytes"), "a.png")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	require.NoError(t, store.RemoveOriginal("a.png"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// removing again is not an error
	assert.NoError(t, store.RemoveOriginal("a.png"))
}

func TestLocalStorage_SaveOriginal_RefusesOverwrite(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.SaveOriginal(strings.NewReader("first"), "a.png")
	require.NoError(t, err)

	_, err = store.SaveOriginal(strings.NewReader("second"), "a.png")
	assert.Error(t, err)
}

func TestLocalStorage_RejectsPathTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"../evil.png", "a/../../evil.png", "/etc/passwd", ""} {
		_, err := store.SaveOriginal(strings.NewReader("x"), name)
		assert.Error(t, err, "filename %q should be rejected", name)

		assert.Error(t, store.RemoveOriginal(name), "filename %q should be rejected", name)
	}
}

func TestLocalStorage_GenerateFilename(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	a := store.GenerateFilename(".PNG")
	b := store.GenerateFilename(".png")

	assert.True(t, strings.HasSuffix(a, ".png"), "extension lowercased: %s", a)
	assert.NotEqual(t, a, b)
}

func TestLocalStorage_PublicPaths(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/uploads/a.png", store.PublicPath("a.png"))
	assert.Equal(t, "/uploads/thumbnails/thumb_a.png", store.PublicThumbnailPath("thumb_a.png"))
}

func TestLocalStorage_CreatesThumbnailDir(t *testing.T) {
	dir := t.TempDir()
	_, err := NewLocalStorage(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "uploads", "thumbnails"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
