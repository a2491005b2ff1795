package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/job-recommender/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveConfig_FlagsWinOverFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	catalogPath := writeFile(t, "jobs.csv", "Title,Location,Cleaned_Description\n")
	configPath := writeFile(t, "config.json",
		`{"embedding_model": "file-model", "port": 9090}`)

	cfg, err := resolveConfig(configPath, config.Config{
		Catalog:        catalogPath,
		EmbeddingModel: "flag-model",
	})
	require.NoError(t, err)

	assert.Equal(t, "flag-model", cfg.EmbeddingModel)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, catalogPath, cfg.Catalog)
}

func TestResolveConfig_EnvFallbacks(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env/jobs")

	cfg, err := resolveConfig("", config.Config{})
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://env/jobs", cfg.DatabaseURL)
}

func TestResolveConfig_CatalogSuppressesDatabaseEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "postgres://env/jobs")

	catalogPath := writeFile(t, "jobs.csv", "Title,Location,Cleaned_Description\n")

	cfg, err := resolveConfig("", config.Config{Catalog: catalogPath})
	require.NoError(t, err)

	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, catalogPath, cfg.Catalog)
}

func TestResolveConfig_InvalidMergeFails(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	catalogPath := writeFile(t, "jobs.csv", "Title,Location,Cleaned_Description\n")

	_, err := resolveConfig("", config.Config{
		Catalog:     catalogPath,
		DatabaseURL: "postgres://also/set",
	})
	assert.Error(t, err)
}
