package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/journalgen/internal/config"
)

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journalgen.yaml")
	out, err := execute(t, "config", "init", path, "--preset", "all-errors")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote all-errors preset")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Entries)
	assert.InDelta(t, 100.0, cfg.ErrorPercent, 0.001)
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journalgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries: 1\n"), 0o644))

	_, err := execute(t, "config", "init", path)
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "entries: 1\n", string(data))

	_, err = execute(t, "config", "init", path, "--force")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Entries)
}

func TestConfigInit_UnknownPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journalgen.yaml")
	_, err := execute(t, "config", "init", path, "--preset", "nope")
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
