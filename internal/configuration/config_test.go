package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"matchdash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigFile = `
app:
  jwt_secret: file-secret-0123456789
  allowed_origins:
    - http://localhost:5173
  timezone: Europe/Paris
database:
  type: postgres
  host: db.internal
  user: dashboard
  password: secret
  name: matchmaking
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRead(t *testing.T) {
	t.Run("should merge defaults, file and environment", func(t *testing.T) {
		t.Setenv("CONFIG_FILE_PATH", writeConfigFile(t, testConfigFile))
		t.Setenv("DOTENV_FILE_PATH", filepath.Join(t.TempDir(), "missing.env"))
		t.Setenv("APP__PORT", "9090")
		t.Setenv("APP__TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2")

		config := Read()

		assert.Equal(t, 9090, config.App.Port)
		assert.Equal(t, "file-secret-0123456789", config.App.JWTSecret)
		assert.Equal(t, []string{"http://localhost:5173"}, config.App.AllowedOrigins)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, config.App.TrustedProxies)
		assert.Equal(t, "default", config.App.Profile)
		assert.Equal(t, 4, config.App.QueryParallelism)
		assert.Equal(t, int32(5432), config.Database.Port)
		assert.Equal(t, "disable", config.Database.SSLMode)
		assert.Equal(t, "none", config.Cache.Type)
		assert.Equal(t, "none", config.Activity.Type)
	})

	t.Run("should read variables from a dotenv file", func(t *testing.T) {
		dotenv := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(dotenv, []byte("APP__LOG_LEVEL=debug\n"), 0o600))

		t.Setenv("CONFIG_FILE_PATH", writeConfigFile(t, testConfigFile))
		t.Setenv("DOTENV_FILE_PATH", dotenv)
		t.Setenv("APP__LOG_LEVEL", "")
		require.NoError(t, os.Unsetenv("APP__LOG_LEVEL"))

		config := Read()

		assert.Equal(t, "debug", config.App.LogLevel)
	})

	t.Run("should apply mysql port default", func(t *testing.T) {
		t.Setenv("CONFIG_FILE_PATH", writeConfigFile(t, testConfigFile))
		t.Setenv("DOTENV_FILE_PATH", filepath.Join(t.TempDir(), "missing.env"))
		t.Setenv("DATABASE__TYPE", "mysql")

		config := Read()

		assert.Equal(t, int32(3306), config.Database.Port)
	})
}

func TestLocation(t *testing.T) {
	paris := Location(models.AppConfiguration{Timezone: "Europe/Paris"})
	assert.Equal(t, "Europe/Paris", paris.String())

	assert.Equal(t, time.UTC, Location(models.AppConfiguration{Timezone: "Not/AZone"}))
}

func TestGetProfile(t *testing.T) {
	assert.Equal(t, ProfileDefault, GetProfile("").Name)

	migrate := GetProfile(ProfileMigrate)
	assert.False(t, migrate.HTTPServer)
	assert.True(t, migrate.Migrations)

	api := GetProfile(ProfileAPI)
	assert.True(t, api.HTTPServer)
	assert.False(t, api.Migrations)
}
