package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
log_level: -4
output_format: flac
pattern: "*.wav"
matcher:
  fuzzy: true
  max_distance: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, -4, cfg.LogLevel)
	assert.Equal(t, "flac", cfg.OutputFormat)
	assert.Equal(t, "*.wav", cfg.Pattern)
	assert.True(t, cfg.Matcher.Fuzzy)
	assert.Equal(t, 2, cfg.Matcher.MaxDistance)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "m4a", cfg.OutputFormat)
	assert.Equal(t, "*.*", cfg.Pattern)
	assert.False(t, cfg.Matcher.Fuzzy)
	assert.Equal(t, 3, cfg.Matcher.MaxDistance)
}

func TestLoadAppliesDefaultsToPartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.LogLevel)
	assert.Equal(t, "m4a", cfg.OutputFormat)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("\t:nope"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
