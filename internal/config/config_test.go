package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Housing", cfg.Datasets.Required)
	assert.Equal(t, []string{"Electronics", "Clothing"}, cfg.Datasets.Optional)
	assert.Equal(t, 1e-6, cfg.Cleaning.Tolerance)
	assert.Contains(t, cfg.Cleaning.MissingTokens, "NA")
	assert.Contains(t, cfg.Cleaning.MissingTokens, "", "empty string is a missing-value sentinel")
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "data", cfg.Paths.DataDir)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOUSING_DATASETS_REQUIRED", "Rentals")
	t.Setenv("HOUSING_LOGGING_LEVEL", "debug")
	t.Setenv("HOUSING_PATHS_DATA_DIR", "/tmp/in")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Rentals", cfg.Datasets.Required)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/in", cfg.Paths.DataDir)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "datasets:\n  required: Sales\ncleaning:\n  tolerance: 0.001\nlogging:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Sales", cfg.Datasets.Required)
	assert.Equal(t, 0.001, cfg.Cleaning.Tolerance)
	assert.Equal(t, "json", cfg.Logging.Format)
	// Untouched sections keep their defaults.
	assert.Equal(t, "reports", cfg.Paths.ReportsDir)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "HOUSING_LOGGING_LEVEL", value: "verbose"},
		{name: "bad log format", key: "HOUSING_LOGGING_FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	paths := PathsConfig{
		DataDir:    filepath.Join(base, "data"),
		ReportsDir: filepath.Join(base, "reports"),
		LogsDir:    filepath.Join(base, "logs"),
	}

	require.NoError(t, paths.EnsureDirectories())
	assert.DirExists(t, paths.ReportsDir)
	assert.DirExists(t, paths.LogsDir)
	assert.NoDirExists(t, paths.DataDir, "input directory is never created")
}

func TestGetReportPath(t *testing.T) {
	paths := PathsConfig{ReportsDir: "out"}
	assert.Equal(t, filepath.Join("out", "cleaned.csv"), paths.GetReportPath("cleaned.csv"))
}
