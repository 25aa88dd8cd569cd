package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Harman090807/Hotel-management-app/utils"
)

// Config is the service configuration: an optional YAML file with
// environment-variable expansion, then environment overrides on top.
// Everything has a default, so running with no file and no env works.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Rooms    []RoomSeed     `yaml:"rooms"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
}

type ServerConfig struct {
	Port          string   `yaml:"port"`
	CORSOrigins   []string `yaml:"cors_origins"`
	SessionSecret string   `yaml:"session_secret"`
}

// DatabaseConfig configures the optional persistence mirror. An empty DSN
// keeps the service purely in-memory, which is the default contract.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// RoomSeed describes one room to add at startup through the normal
// add-room path. Blank attributes take the usual defaults (N/N/S).
type RoomSeed struct {
	Number  int    `yaml:"number"`
	AC      string `yaml:"ac"`
	Comfort string `yaml:"comfort"`
	Size    string `yaml:"size"`
	Rent    int    `yaml:"rent"`
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:        "hotel-management",
			Environment: "development",
		},
		Server: ServerConfig{
			Port:          "8080",
			CORSOrigins:   []string{"*"},
			SessionSecret: "dev-secret",
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Load reads the YAML file at path (default "config.yaml" when path is
// empty). A missing default file is fine; a missing explicit file is an
// error. Environment variables are expanded inside the file before parsing,
// then PORT, CORS_ORIGINS, HOTEL_DB_DSN, METRICS_ENABLED and SESSION_SECRET
// override whatever the file said.
func Load(path string) (*Config, error) {
	cfg := defaults()

	explicit := path != ""
	if !explicit {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// no file, run on defaults + env
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)
	normalize(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = utils.EnvOrDefault("PORT", cfg.Server.Port)
	cfg.Server.SessionSecret = utils.EnvOrDefault("SESSION_SECRET", cfg.Server.SessionSecret)
	cfg.Database.DSN = utils.EnvOrDefault("HOTEL_DB_DSN", cfg.Database.DSN)

	if raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); raw != "" {
		cfg.Server.CORSOrigins = splitOrigins(raw)
	}
	if raw := strings.TrimSpace(os.Getenv("METRICS_ENABLED")); raw != "" {
		cfg.Metrics.Enabled = strings.EqualFold(raw, "true")
	}
}

func normalize(cfg *Config) {
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"*"}
	}
	if strings.TrimSpace(cfg.Server.Port) == "" {
		cfg.Server.Port = "8080"
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
