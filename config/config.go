package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar names an optional YAML file layered between defaults and environment.
const ConfigPathEnvVar = "CONFIG_PATH"

// Config holds all configuration for the application
type Config struct {
	Server         ServerConfig         `koanf:"server"`
	Database       DatabaseConfig       `koanf:"database"`
	Redis          RedisConfig          `koanf:"redis"`
	Auth           AuthConfig           `koanf:"auth"`
	Recommendation RecommendationConfig `koanf:"recommendation"`
	Storage        StorageConfig        `koanf:"storage"`
	Log            LogConfig            `koanf:"log"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            string        `koanf:"port"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver       string `koanf:"driver"`
	Host         string `koanf:"host"`
	Port         string `koanf:"port"`
	User         string `koanf:"user"`
	Password     string `koanf:"password"`
	Name         string `koanf:"name"`
	SSLMode      string `koanf:"ssl_mode"`
	Path         string `koanf:"path"`
	MaxOpenConns int    `koanf:"max_open_conns"`
}

// DSN returns the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Host       string        `koanf:"host"`
	Port       string        `koanf:"port"`
	Password   string        `koanf:"password"`
	DB         int           `koanf:"db"`
	URL        string        `koanf:"url"`
	CatalogTTL time.Duration `koanf:"catalog_ttl"`
}

type AuthConfig struct {
	JWTSecret string `koanf:"jwt_secret"`
	Issuer    string `koanf:"issuer"`
}

// RecommendationConfig tunes generation.
type RecommendationConfig struct {
	BatchSize          int `koanf:"batch_size"`
	PersistConcurrency int `koanf:"persist_concurrency"`
	// Season is compared against each food's season list. It is a fixed
	// setting and is never derived from the current date.
	Season         string        `koanf:"season"`
	GenerateLimit  int           `koanf:"generate_limit"`
	GenerateWindow time.Duration `koanf:"generate_window"`
	// Sessions idle longer than SessionIdleTTL are dropped and reloaded
	// from the store. At most MaxSessions are held.
	SessionIdleTTL time.Duration `koanf:"session_idle_ttl"`
	MaxSessions    int           `koanf:"max_sessions"`
}

type StorageConfig struct {
	BucketName string        `koanf:"bucket_name"`
	Region     string        `koanf:"region"`
	PresignTTL time.Duration `koanf:"presign_ttl"`
}

type LogConfig struct {
	Level string `koanf:"level"`
	Mode  string `koanf:"mode"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "8080",
			CORSOrigins:     []string{"http://localhost:5173"},
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:       "postgres",
			Host:         "localhost",
			Port:         "5432",
			User:         "postgres",
			Name:         "ahara",
			SSLMode:      "disable",
			Path:         "ahara.db",
			MaxOpenConns: 25,
		},
		Redis: RedisConfig{
			Enabled:    true,
			Host:       "localhost",
			Port:       "6379",
			CatalogTTL: 10 * time.Minute,
		},
		Auth: AuthConfig{
			Issuer: "ahara",
		},
		Recommendation: RecommendationConfig{
			BatchSize:          8,
			PersistConcurrency: 4,
			Season:             "winter",
			GenerateLimit:      10,
			GenerateWindow:     time.Hour,
			SessionIdleTTL:     30 * time.Minute,
			MaxSessions:        10000,
		},
		Storage: StorageConfig{
			PresignTTL: 15 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// secretKeys maps Docker secret file names to config keys.
var secretKeys = map[string]string{
	"db_password":    "database.password",
	"jwt_secret":     "auth.jwt_secret",
	"redis_password": "redis.password",
}

// LoadConfig layers struct defaults, an optional YAML file, environment
// variables and (outside CI) Docker secrets, then validates the result.
func LoadConfig() (*Config, error) {
	mode := GetEnvironment()
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// CI gets secrets from environment variables only
	if mode != CI {
		for name, key := range secretKeys {
			if value := readSecret(name); value != "" {
				if err := k.Set(key, value); err != nil {
					return nil, fmt.Errorf("failed to apply secret %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Server.CORSOrigins = splitList(cfg.Server.CORSOrigins)
	if cfg.Log.Mode == "" {
		cfg.Log.Mode = mode.LogMode()
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// envPrefixes maps environment variable prefixes to config sections.
var envPrefixes = []struct{ prefix, section string }{
	{"server_", "server."},
	{"db_", "database."},
	{"redis_", "redis."},
	{"jwt_", "auth.jwt_"},
	{"auth_", "auth."},
	{"recommendation_", "recommendation."},
	{"s3_", "storage."},
	{"aws_", "storage."},
	{"log_", "log."},
}

// envTransformFunc turns DB_SSL_MODE into database.ssl_mode. Variables outside
// the known prefixes are ignored.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)
	for _, m := range envPrefixes {
		if strings.HasPrefix(key, m.prefix) {
			return m.section + strings.TrimPrefix(key, m.prefix)
		}
	}
	return ""
}

// splitList expands comma separated entries coming from a single env value.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
