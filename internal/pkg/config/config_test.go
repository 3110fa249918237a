package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("UR_TEST_STR", "value")
	t.Setenv("UR_TEST_INT", "42")
	t.Setenv("UR_TEST_BAD_INT", "forty")
	t.Setenv("UR_TEST_BOOL", "true")

	assert.Equal(t, "value", GetEnv("UR_TEST_STR", "x"))
	assert.Equal(t, "x", GetEnv("UR_TEST_MISSING", "x"))
	assert.Equal(t, 42, GetEnvAsInt("UR_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("UR_TEST_BAD_INT", 1))
	assert.True(t, GetEnvAsBool("UR_TEST_BOOL", false))
	assert.False(t, GetEnvAsBool("UR_TEST_MISSING", false))
}

func TestInitConfig_LoadsEnvFileLocally(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unityride.env")
	content := "SERVER_PORT=9090\nJWT_SECRET=from-file\nDB_AUTO_MIGRATE=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv never overrides variables that are already set, so make sure
	// the keys start out unset and are cleaned up afterwards.
	for _, key := range []string{"SERVER_PORT", "JWT_SECRET", "DB_AUTO_MIGRATE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := InitConfig(path)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "unityride", cfg.App.Name)
}

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("RATE_LIMIT_BOOKINGS", "")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10, cfg.RateLimit.BookingLimit)
	assert.Equal(t, 60, cfg.RateLimit.PeriodSeconds)
	assert.Equal(t, 100, cfg.Notify.ListLimit)
}
