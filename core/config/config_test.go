package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"deck-finder/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 1048576, cfg.Server.BodyLimit)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
	assert.Equal(t, "local", cfg.Catalog.Backend)
	assert.True(t, cfg.Catalog.ReloadOnStart)
	assert.Equal(t, 75, cfg.Enrich.ChunkSize)
	assert.Equal(t, 100, cfg.Enrich.DelayMs)
	assert.Equal(t, "https://api.scryfall.com", cfg.Enrich.BaseURL)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CATALOG_DIR", "/srv/catalog")
	t.Setenv("ENRICH_CHUNK_SIZE", "20")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/srv/catalog", cfg.Catalog.Dir)
	assert.Equal(t, 20, cfg.Enrich.ChunkSize)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_DIR=/var/decks\nCATALOG_BACKEND=s3\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("DATABASE_DIR")
		os.Unsetenv("CATALOG_BACKEND")
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/var/decks", cfg.Database.Dir)
	assert.Equal(t, "s3", cfg.Catalog.Backend)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"Backend", "CATALOG_BACKEND", "ftp", `unsupported catalog.backend "ftp"`},
		{"Driver", "DATABASE_DRIVER", "postgres", `unsupported database.driver "postgres"`},
		{"ChunkSize", "ENRICH_CHUNK_SIZE", "500", "exceeds the Scryfall limit of 75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := config.LoadConfig(t.TempDir())
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
