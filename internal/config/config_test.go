package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 8080, c.Port)
	assert.Equal(t, StorageInMemory, c.Storage)
	assert.Equal(t, "portfolio", c.MongoDatabase)
	assert.Equal(t, 5*time.Minute, c.CacheTTL)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.False(t, c.LogSQL)
	assert.True(t, c.SeedOnStart, "in-memory seeds on start by default")
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/portfolio")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("LOG_SQL", "true")

	c, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 9090, c.Port)
	assert.Equal(t, StoragePostgres, c.Storage)
	assert.Equal(t, "postgres://localhost/portfolio", c.DatabaseURL)
	assert.Equal(t, 30*time.Second, c.CacheTTL)
	assert.True(t, c.LogSQL)
	assert.False(t, c.SeedOnStart, "persistent storages are not seeded unless asked")
}

func TestLoad_SeedOnStartOverride(t *testing.T) {
	t.Setenv("SEED_ON_START", "false")

	c, err := Load(New(), "")
	require.NoError(t, err)
	assert.False(t, c.SeedOnStart)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("PORT: 7070\nMONGO_DATABASE: site\n"), 0o600))

	c, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 7070, c.Port)
	assert.Equal(t, "site", c.MongoDatabase)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown storage", env: map[string]string{"STORAGE": "sqlite"}},
		{name: "postgres without dsn", env: map[string]string{"STORAGE": "postgres"}},
		{name: "mongo without uri", env: map[string]string{"STORAGE": "mongo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(New(), "")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
