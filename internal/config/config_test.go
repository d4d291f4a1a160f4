package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"matrix": "matrix.json",
		"documents": "documents.json",
		"output": "report.xlsx",
		"port": 8080,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "matrix.json", cfg.Matrix)
	assert.Equal(t, "documents.json", cfg.Documents)
	assert.Equal(t, "report.xlsx", cfg.Output)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := &Config{
		Port: 70000,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_MissingMatrixFile(t *testing.T) {
	cfg := &Config{
		Matrix: "/nonexistent/matrix.json",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "matrix file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	matrixFile := filepath.Join(t.TempDir(), "matrix.json")
	require.NoError(t, os.WriteFile(matrixFile, []byte(`[]`), 0644))

	cfg := &Config{
		Matrix: matrixFile,
		Port:   8080,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Matrix:      "default-matrix.json",
		Output:      "default.xlsx",
		DatabaseURL: "postgres://localhost/crewdocs",
		Port:        8080,
	}

	partial := Config{
		Matrix:    "custom-matrix.json",
		Documents: "documents.json",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-matrix.json", merged.Matrix)
	assert.Equal(t, "documents.json", merged.Documents)

	// Default values should fill in empty fields
	assert.Equal(t, "default.xlsx", merged.Output)
	assert.Equal(t, "postgres://localhost/crewdocs", merged.DatabaseURL)
	assert.Equal(t, 8080, merged.Port)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Matrix: "matrix.json",
		Output: "report.xlsx",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "matrix.json", merged.Matrix)
	assert.Equal(t, "report.xlsx", merged.Output)
}
