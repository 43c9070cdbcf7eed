package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAllowedImageType(t *testing.T) {
	tests := []struct {
		contentType string
		allowed     bool
	}{
		{"image/jpeg", true},
		{"image/jpg", true},
		{"image/png", true},
		{"IMAGE/PNG", true},
		{" image/jpeg ", true},
		{"image/gif", false},
		{"image/webp", false},
		{"text/html", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, IsAllowedImageType(tt.contentType), tt.contentType)
	}
}

func TestImageStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(dir)
	require.NoError(t, err)

	path, err := store.Save(strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	// stored path is <dir base>/<random name>, no extension
	require.True(t, strings.HasPrefix(path, filepath.Base(dir)+"/"), path)
	name := strings.TrimPrefix(path, filepath.Base(dir)+"/")
	assert.NotContains(t, name, ".")

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestImageStoreSaveUniqueNames(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(strings.NewReader("one"))
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestImageStoreRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(dir)
	require.NoError(t, err)

	path, err := store.Save(strings.NewReader("doomed"))
	require.NoError(t, err)
	name := strings.TrimPrefix(path, filepath.Base(dir)+"/")

	store.remove(context.Background(), path)

	_, statErr := os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(statErr))
}

func TestImageStoreRemoveRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(filepath.Join(dir, "images"))
	require.NoError(t, err)

	outside := filepath.Join(dir, "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	store.remove(context.Background(), "../victim.txt")

	// the file outside the image dir survives
	_, statErr := os.Stat(outside)
	assert.NoError(t, statErr)
}

func TestImageStoreRemoveMissingFileIsSilent(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	// nothing to assert beyond it not panicking; failures are swallowed
	store.remove(context.Background(), "images/does-not-exist")
}
