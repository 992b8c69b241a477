package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"02 - b.wav", "01 - a.wav", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	files := LocalFiles{}

	all, err := files.List(dir, "*.*")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "01 - a.wav"),
		filepath.Join(dir, "02 - b.wav"),
		filepath.Join(dir, "notes.txt"),
	}, all)

	wavs, err := files.List(dir, "*.wav")
	require.NoError(t, err)
	assert.Len(t, wavs, 2)

	everything, err := files.List(dir, "")
	require.NoError(t, err)
	assert.Len(t, everything, 3)
}

func TestListMissingDir(t *testing.T) {
	_, err := LocalFiles{}.List(filepath.Join(t.TempDir(), "missing"), "*")
	assert.Error(t, err)
}

func TestListBadPattern(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.wav"), []byte("x"), 0o644))

	_, err := LocalFiles{}.List(dir, "[")
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.wav")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	files := LocalFiles{}
	assert.True(t, files.Exists(path))
	assert.False(t, files.Exists(filepath.Join(dir, "missing.wav")))
}
