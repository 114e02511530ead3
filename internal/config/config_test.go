package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_PORT", "DB_DRIVER", "JWT_ACCESS_TTL", "NOTIFY_WORKERS", "CLIENT_ORIGIN"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	require.Equal(t, "", cfg.AppEnv)
	require.Equal(t, 15*time.Minute, cfg.JwtAccessTTL)
	require.Equal(t, 7*24*time.Hour, cfg.JwtRefreshTTL)
	require.Equal(t, 2, cfg.NotifyWorkers)
	require.Nil(t, cfg.ClientOrigins)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("JWT_ACCESS_TTL", "5m")
	t.Setenv("NOTIFY_WORKERS", "4")
	t.Setenv("CLIENT_ORIGIN", "http://localhost:3000, https://app.example.com ,")

	cfg := LoadConfig()

	require.True(t, cfg.IsProduction())
	require.Equal(t, DriverSQLite, cfg.DbDriver)
	require.False(t, cfg.DbAutoMigrate)
	require.Equal(t, 5*time.Minute, cfg.JwtAccessTTL)
	require.Equal(t, 4, cfg.NotifyWorkers)
	require.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.ClientOrigins)
}

func TestGetInt_FallsBackOnInvalidValues(t *testing.T) {
	t.Setenv("NOTIFY_QUEUE_SIZE", "lots")
	require.Equal(t, 256, getInt("NOTIFY_QUEUE_SIZE", 256))

	t.Setenv("NOTIFY_QUEUE_SIZE", "-3")
	require.Equal(t, 256, getInt("NOTIFY_QUEUE_SIZE", 256))
}

func TestParseList(t *testing.T) {
	require.Nil(t, parseList("   "))
	require.Nil(t, parseList(" , ,"))
	require.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, parseList("10.0.0.1,10.0.0.2"))
}
