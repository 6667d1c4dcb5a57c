package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "app.db")
	path := writeConfig(t, `
server:
  port: 9000
database:
  driver: sqlite
  path: `+dbPath+`
session:
  secret_key: file-secret
  expire_minutes: 30
admin:
  password: s3cret
log:
  level: debug
  format: text
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.GetAddress())
	assert.Equal(t, "file-secret", cfg.Session.SecretKey)
	assert.Equal(t, 30, cfg.Session.ExpireMinutes)
	assert.Equal(t, "HS256", cfg.Session.Algorithm)
	assert.Equal(t, "workout_session", cfg.Session.CookieName)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, "s3cret", cfg.Admin.Password)
	assert.Equal(t, "Admin User", cfg.Admin.Name)
	assert.Equal(t, "text", cfg.Log.Format)

	_, err = os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err, "sqlite directory should be created")
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("WORKOUT_SESSION_SECRET_KEY", "env-secret")
	t.Setenv("WORKOUT_SERVER_PORT", "8181")
	t.Setenv("WORKOUT_DATABASE_PATH", filepath.Join(t.TempDir(), "env.db"))

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Session.SecretKey)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "admin123", cfg.Admin.Password)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing secret",
			body: "server:\n  port: 8080\n",
		},
		{
			name: "bad port",
			body: "server:\n  port: 70000\nsession:\n  secret_key: x\n",
		},
		{
			name: "redis store without redis",
			body: "session:\n  secret_key: x\n  store: redis\n",
		},
		{
			name: "unknown driver",
			body: "session:\n  secret_key: x\ndatabase:\n  driver: oracle\n",
		},
		{
			name: "postgres without dsn",
			body: "session:\n  secret_key: x\ndatabase:\n  driver: postgres\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WORKOUT_DATABASE_PATH", filepath.Join(t.TempDir(), "v.db"))
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
