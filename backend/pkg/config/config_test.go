package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "redesocial/backend/pkg/errors"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"REDESOCIAL_CONFIG", "PORT", "ENV", "NEO4J_URI", "NEO4J_USER", "NEO4J_PASSWORD",
		"NEO4J_DATABASE", "NEO4J_MAX_POOL_SIZE", "NEO4J_ENSURE_SCHEMA",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4jURI)
	assert.Equal(t, "neo4j", cfg.Neo4jUser)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.Neo4jEnsureSchema)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "redesocial.yaml")
	content := "neo4j_uri: bolt://graph:7687\nneo4j_user: admin\nport: \"9000\"\nneo4j_ensure_schema: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("REDESOCIAL_CONFIG", path)
	t.Setenv("NEO4J_USER", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "bolt://graph:7687", cfg.Neo4jURI)
	assert.Equal(t, "from-env", cfg.Neo4jUser)
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.Neo4jEnsureSchema)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDESOCIAL_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Neo4jURI = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeConfig))

	cfg = Default()
	cfg.Env = "staging"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Env = "production"
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.IsProduction())
}
