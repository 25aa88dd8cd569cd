package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	assert.Error(t, err, "an explicitly named file must exist")

	// default path missing is fine
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "dev-secret", cfg.Server.SessionSecret)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Empty(t, cfg.Database.DSN)
}

func TestLoadFileWithEnvExpansion(t *testing.T) {
	t.Setenv("SUITE_RENT", "950")
	path := writeConfig(t, `
app:
  name: grand-hotel
  environment: production
server:
  port: "9000"
  cors_origins:
    - https://frontdesk.example.com
database:
  dsn: hotel.db
metrics:
  enabled: false
rooms:
  - number: 101
    ac: A
    comfort: S
    size: B
    rent: ${SUITE_RENT}
  - number: 102
    rent: 300
`)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "grand-hotel", cfg.App.Name)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"https://frontdesk.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "hotel.db", cfg.Database.DSN)
	assert.False(t, cfg.Metrics.Enabled)
	if assert.Len(t, cfg.Rooms, 2) {
		assert.Equal(t, 950, cfg.Rooms[0].Rent)
		assert.Equal(t, "A", cfg.Rooms[0].AC)
		assert.Equal(t, "", cfg.Rooms[1].AC, "omitted attributes stay blank for the seeder to default")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
metrics:
  enabled: false
`)

	t.Setenv("PORT", "7777")
	t.Setenv("CORS_ORIGINS", " https://a.example.com , https://b.example.com ,")
	t.Setenv("HOTEL_DB_DSN", "mysql://root:secret@db:3306/hotel")
	t.Setenv("METRICS_ENABLED", "TRUE")
	t.Setenv("SESSION_SECRET", "prod-secret")

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "7777", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "mysql://root:secret@db:3306/hotel", cfg.Database.DSN)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "prod-secret", cfg.Server.SessionSecret)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "server: [not: a map")
	_, err := Load(path)
	assert.Error(t, err)
}
