package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, Config{}, cfg)
}

func TestLoadFromExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".bursarc")
	content := "file = \"ledger.bursa\"\nno_pager = true\nverbose = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, "ledger.bursa", cfg.File)
	require.True(t, cfg.NoPager)
	require.True(t, cfg.Verbose)
}
