package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/runviz/internal/adapters/config"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, time.Minute, cfg.Leases.Template())
	assert.Equal(t, 3*time.Minute, cfg.Leases.Reload())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"logs_dir: /var/lib/runviz/runs\nleases:\n  reload_seconds: 30\n",
	), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/runviz/runs", cfg.LogsDir)
	assert.Equal(t, 30*time.Second, cfg.Leases.Reload())
	// Untouched fields keep their defaults.
	assert.Equal(t, time.Minute, cfg.Leases.Template())
	assert.Equal(t, config.Default().Listen, cfg.Listen)
	assert.Equal(t, config.Default().Sampling, cfg.Sampling)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unterminated"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
