package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/maxviazov/pagewindow/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoad_FromYAMLAndEnv(t *testing.T) {
	yaml := `
app:
  name: pagewindow-test
  version: 1.2.3
  env: test
  port: 18080
  shutdown_timeout: 3s

logger:
  level: warn
  format: json
  output_target: stderr
  time_format: rfc3339

pagination:
  default_page_size: 20
  default_window_size: 7
`
	path := writeTempConfig(t, yaml)
	t.Setenv("APP_PAGINATION_MAX_PAGE_SIZE", "250")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pagewindow-test", cfg.App.Name)
	assert.Equal(t, 18080, cfg.App.Port)
	assert.Equal(t, 3*time.Second, cfg.App.ShutdownTimeout)

	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "stderr", cfg.Logger.OutputTarget)
	assert.Equal(t, "rfc3339", cfg.Logger.TimeFormat)
	assert.Equal(t, "test", cfg.Logger.Env, "logger inherits app env")
	assert.Equal(t, "pagewindow-test", cfg.Logger.ServiceName)
	assert.Equal(t, "1.2.3", cfg.Logger.ServiceVersion)

	assert.Equal(t, 20, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 7, cfg.Pagination.DefaultWindowSize)
	assert.Equal(t, 250, cfg.Pagination.MaxPageSize, "env override applied")
	assert.Equal(t, 100, cfg.Pagination.MaxActions, "default kept")
}

func TestLoad_WithoutFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "pagewindow", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 15*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, 10, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 5, cfg.Pagination.DefaultWindowSize)
	assert.Equal(t, 100, cfg.Pagination.MaxPageSize)
}

func TestLoad_LoggerEnvOverrides(t *testing.T) {
	t.Setenv("APP_LOGGER_TIME_FORMAT", "unix_ms")
	t.Setenv("APP_LOGGER_TIME_FIELD", "time")
	t.Setenv("APP_LOGGER_WITH_CALLER", "true")
	t.Setenv("APP_LOGGER_STACKTRACE", "true")
	t.Setenv("APP_LOGGER_SERVICE_NAME", "pagewindow-edge")
	t.Setenv("APP_LOGGER_ENV", "staging")

	cfg, err := config.Load(writeTempConfig(t, "logger:\n  level: info\n"))
	require.NoError(t, err)

	assert.Equal(t, "unix_ms", cfg.Logger.TimeFormat)
	assert.Equal(t, "time", cfg.Logger.TimeField)
	assert.True(t, cfg.Logger.WithCaller)
	assert.True(t, cfg.Logger.Stacktrace)
	assert.Equal(t, "pagewindow-edge", cfg.Logger.ServiceName, "env wins over app.name")
	assert.Equal(t, "staging", cfg.Logger.Env, "env wins over app.env")
	assert.Equal(t, "0.1.0", cfg.Logger.ServiceVersion, "still inherited from app.version")
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "config file not found")
}

func TestLoad_InvalidPaginationFails(t *testing.T) {
	cases := map[string]string{
		"zero page size": `
pagination:
  default_page_size: 0
`,
		"cap below default": `
pagination:
  default_page_size: 50
  max_page_size: 20
`,
		"bad port": `
app:
  port: 70000
`,
		"bad env": `
app:
  env: moon
`,
	}
	for name, yaml := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeTempConfig(t, yaml))
			assert.ErrorContains(t, err, "config validation error")
		})
	}
}
