package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefault(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
threshold: 0.83
maxTokens: 256
dataDir: ./testdata/model
store:
  backend: postgres
  connection: postgres://localhost:5432/commentcode
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "commentcode.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 0.83, cfg.Threshold)
	assert.Equal(t, 256, cfg.MaxTokens)
	assert.Equal(t, "./testdata/model", cfg.DataDir)
	assert.Equal(t, "postgres", cfg.Store.Backend)
	assert.Equal(t, "postgres://localhost:5432/commentcode", cfg.Store.Connection)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "commentcode.yaml"), []byte("not: [valid"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
