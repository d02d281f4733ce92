package config_test

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"shipfront/internal/config"
)

func resetFlags(t *testing.T) {
	t.Helper()
	old := pflag.CommandLine
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	t.Cleanup(func() {
		pflag.CommandLine = old
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "API_BASE_URL", "API_TIMEOUT", "SESSION_FILE",
		"PPROF_ADDR", "PPROF_USER", "PPROF_PASS", "LOGIN_RATE_LIMIT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	cfg, err := config.Load(config.CustomerDefaults())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "http://localhost:8001", cfg.API.BaseURL)
	require.Equal(t, 15*time.Second, cfg.API.Timeout)
	require.Equal(t, "customer-session.json", cfg.Session.FilePath)
	require.Equal(t, 10, cfg.RateLimit.LoginPerMinute)
	require.Empty(t, cfg.Pprof.Addr)
}

func TestLoad_DriverDefaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	cfg, err := config.Load(config.DriverDefaults())
	require.NoError(t, err)
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, "http://127.0.0.1:8002/api/driver", cfg.API.BaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "9090")
	t.Setenv("API_BASE_URL", "http://backend:8000")
	t.Setenv("API_TIMEOUT", "30s")
	t.Setenv("SESSION_FILE", "/tmp/session.json")
	t.Setenv("PPROF_ADDR", "127.0.0.1:6060")
	t.Setenv("LOGIN_RATE_LIMIT", "5")

	cfg, err := config.Load(config.CustomerDefaults())
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "http://backend:8000", cfg.API.BaseURL)
	require.Equal(t, 30*time.Second, cfg.API.Timeout)
	require.Equal(t, "/tmp/session.json", cfg.Session.FilePath)
	require.Equal(t, "127.0.0.1:6060", cfg.Pprof.Addr)
	require.Equal(t, 5, cfg.RateLimit.LoginPerMinute)
}

func TestLoad_InvalidPort(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	t.Setenv("PORT", "70000")

	cfg, err := config.Load(config.CustomerDefaults())
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	t.Setenv("API_TIMEOUT", "soon")

	cfg, err := config.Load(config.CustomerDefaults())
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	t.Setenv("LOGIN_RATE_LIMIT", "0")

	cfg, err := config.Load(config.CustomerDefaults())
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_FlagsParseError(t *testing.T) {
	oldArgs := os.Args
	oldCommandLine := pflag.CommandLine

	defer func() {
		os.Args = oldArgs
		pflag.CommandLine = oldCommandLine
	}()

	clearEnv(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	pflag.CommandLine = fs
	os.Args = []string{"cmd", "--port=not-a-number"}

	cfg, err := config.Load(config.CustomerDefaults())

	require.Error(t, err)
	require.Nil(t, cfg)
	require.Contains(t, err.Error(), "parse flags")
}
