package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TMS_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "output", cfg.Paths.OutputDir)
	assert.Equal(t, "2024-01-01", cfg.Program.StartDate)
	assert.Equal(t, 120, cfg.Program.NumDays)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tms-config.yaml")
	content := "paths:\n  output_dir: from-file\nprogram:\n  num_days: 30\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	t.Setenv("TMS_CONFIG_FILE", file)
	t.Setenv("TMS_PATHS_OUTPUT_DIR", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Paths.OutputDir)
	assert.Equal(t, 30, cfg.Program.NumDays)
}

func TestLoad_InvalidFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tms-config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("paths: [not a map"), 0644))
	t.Setenv("TMS_CONFIG_FILE", file)

	_, err := Load()
	assert.Error(t, err)
}

func TestArtifactPath(t *testing.T) {
	cfg := &Config{Paths: PathsConfig{OutputDir: "out"}}
	assert.Equal(t, filepath.Join("out", DashboardPNG), cfg.ArtifactPath(DashboardPNG))
}

func TestEnsureDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	cfg := &Config{Paths: PathsConfig{OutputDir: dir}}

	require.NoError(t, cfg.EnsureDirs())
	assert.DirExists(t, dir)
}
