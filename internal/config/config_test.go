package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.FocusEntity)
	assert.Equal(t, "average", cfg.Bound)
	assert.False(t, cfg.IncludeInactive)
	assert.Equal(t, 100000, cfg.MaxPaths)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
focus_entity: "12345678"
bound: upper
include_inactive: true
max_paths: 500
output:
  format: json
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "12345678", cfg.FocusEntity)
	assert.Equal(t, "upper", cfg.Bound)
	assert.True(t, cfg.IncludeInactive)
	assert.Equal(t, 500, cfg.MaxPaths)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bound: lower\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lower", cfg.Bound)
	assert.Equal(t, 100000, cfg.MaxPaths)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
