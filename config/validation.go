package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that the loaded configuration is usable.
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	var errors []string

	if cfg.Server.Port == "" {
		errors = append(errors, "server.port is required")
	}

	switch cfg.Database.Driver {
	case "postgres":
		for field, value := range map[string]string{
			"database.host": cfg.Database.Host,
			"database.port": cfg.Database.Port,
			"database.user": cfg.Database.User,
			"database.name": cfg.Database.Name,
		} {
			if value == "" {
				errors = append(errors, fmt.Sprintf("%s is required for the postgres driver", field))
			}
		}
		if cfg.Database.Password == "" && (env == CI || env == Production) {
			errors = append(errors, "database password is required in "+string(env))
		}
	case "sqlite":
		if cfg.Database.Path == "" {
			errors = append(errors, "database.path is required for the sqlite driver")
		}
	default:
		errors = append(errors, fmt.Sprintf("unsupported database driver %q", cfg.Database.Driver))
	}

	if cfg.Auth.JWTSecret == "" {
		errors = append(errors, "jwt_secret is required")
	}

	if cfg.Redis.Enabled && cfg.Redis.URL == "" && (cfg.Redis.Host == "" || cfg.Redis.Port == "") {
		errors = append(errors, "redis.url or redis.host and redis.port are required when redis is enabled")
	}

	rc := cfg.Recommendation
	if rc.BatchSize < 1 || rc.BatchSize > 50 {
		errors = append(errors, "recommendation.batch_size must be between 1 and 50")
	}
	if rc.PersistConcurrency < 1 {
		errors = append(errors, "recommendation.persist_concurrency must be at least 1")
	}
	if strings.TrimSpace(rc.Season) == "" {
		errors = append(errors, "recommendation.season is required")
	}
	if rc.GenerateLimit < 1 || rc.GenerateWindow <= 0 {
		errors = append(errors, "recommendation.generate_limit and generate_window must be positive")
	}
	if rc.SessionIdleTTL <= 0 || rc.MaxSessions < 1 {
		errors = append(errors, "recommendation.session_idle_ttl and max_sessions must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}
	return nil
}
