package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"catalog": "jobs.csv",
		"top_n": 5,
		"min_skill_match": 25,
		"policy": "exclude",
		"port": 9090
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "jobs.csv", cfg.Catalog)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, 25.0, cfg.MinSkillMatch)
	assert.Equal(t, "exclude", cfg.Policy)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveSources(t *testing.T) {
	cfg := &Config{Catalog: "jobs.csv", DatabaseURL: "postgres://localhost/jobs"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_Ranges(t *testing.T) {
	assert.Error(t, (&Config{TopN: -1}).Validate())
	assert.Error(t, (&Config{MinSkillMatch: 101}).Validate())
	assert.Error(t, (&Config{Policy: "strict"}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.NoError(t, (&Config{TopN: 10, MinSkillMatch: 30, Policy: "penalize", Port: 8080}).Validate())
}

func TestValidate_CatalogMustExist(t *testing.T) {
	cfg := &Config{Catalog: filepath.Join(t.TempDir(), "missing.csv")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{TopN: 5}
	merged := cfg.MergeWithDefaults(Config{TopN: 10, Policy: "exclude", Catalog: "jobs.csv"})

	assert.Equal(t, 5, merged.TopN)
	assert.Equal(t, "exclude", merged.Policy)
	assert.Equal(t, "jobs.csv", merged.Catalog)
}
