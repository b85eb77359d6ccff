package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	s := &service{}

	cfg, err := s.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.True(t, cfg.UI.AllowClear)
	assert.NotEmpty(t, cfg.Catalog)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	s := &service{}
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	want := &Config{
		Version: 1,
		UI: UISettings{
			Placeholder:    "Choose a thing",
			MaxVisibleRows: 4,
			AllowClear:     false,
		},
		Catalog: []CatalogEntry{
			{Label: "One", Detail: "first"},
			{Label: "Two", Detail: "second"},
		},
	}

	require.NoError(t, s.SaveToPath(want, path))

	got, err := s.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	s := &service{}
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("ui = {{{"), 0644))

	_, err := s.LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFillsMissingPlaceholder(t *testing.T) {
	s := &service{}
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	cfg, err := s.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().UI.Placeholder, cfg.UI.Placeholder)
}
