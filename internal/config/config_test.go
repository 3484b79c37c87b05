package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jrsteele09/go-budget-client/internal/config"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("BUDGET_API_URL", "")
	t.Setenv("BUDGET_HTTP_TIMEOUT", "")
	t.Setenv("BUDGET_SESSION_STORE", "")

	c, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "http://localhost/api", c.GetAPIBaseURL())
	require.Equal(t, "/login", c.GetLoginPath())
	require.Equal(t, "/token/refresh/", c.GetRefreshPath())
	require.Equal(t, 30*time.Second, c.GetHTTPTimeout())
	require.Equal(t, "file", c.GetSessionStore())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BUDGET_API_URL", "https://budget.example.com/api/")
	t.Setenv("BUDGET_HTTP_TIMEOUT", "5s")
	t.Setenv("BUDGET_SESSION_STORE", "Keyring")

	c := config.New()
	require.Equal(t, "https://budget.example.com/api", c.GetAPIBaseURL())
	require.Equal(t, 5*time.Second, c.GetHTTPTimeout())
	require.Equal(t, "keyring", c.GetSessionStore())
}

func TestInvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("BUDGET_HTTP_TIMEOUT", "soon")
	require.Equal(t, 30*time.Second, config.New().GetHTTPTimeout())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("api_url: http://file.example/api\nsession_store: memory\nlog_level: DEBUG\n"), 0o600)
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = config.Load("") })

	t.Setenv("BUDGET_API_URL", "")
	t.Setenv("BUDGET_SESSION_STORE", "")
	t.Setenv("BUDGET_LOG_LEVEL", "")

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://file.example/api", c.GetAPIBaseURL())
	require.Equal(t, "memory", c.GetSessionStore())
	require.Equal(t, "debug", c.GetLogLevel())

	t.Run("env wins over file", func(t *testing.T) {
		t.Setenv("BUDGET_API_URL", "http://env.example/api")
		require.Equal(t, "http://env.example/api", c.GetAPIBaseURL())
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("api_url: [unterminated"), 0o600))
		_, err := config.Load(bad)
		require.Error(t, err)
	})
}
