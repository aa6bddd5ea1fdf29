// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Either set DATABASE_URL
	// directly, or set the POSTGRES_* variables and Load assembles the URL.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string
}

// Load reads configuration from environment variables and returns a Config.
//
// The database connection string comes from DATABASE_URL when set. Otherwise
// it is assembled from POSTGRES_URL, POSTGRES_USER, POSTGRES_PASSWORD,
// POSTGRES_DB, and POSTGRES_PORT, the variables a managed Postgres container
// typically exports. Returns an error listing any required variables that are
// not set.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL != "" {
		return cfg, nil
	}

	var missing []string
	pg := make(map[string]string, 5)
	for _, key := range []string{"POSTGRES_URL", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB", "POSTGRES_PORT"} {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
			continue
		}
		pg[key] = v
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: DATABASE_URL or %s", strings.Join(missing, ", "))
	}

	cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(pg["POSTGRES_USER"]),
		url.QueryEscape(pg["POSTGRES_PASSWORD"]),
		hostFrom(pg["POSTGRES_URL"]),
		pg["POSTGRES_PORT"],
		pg["POSTGRES_DB"],
	)
	return cfg, nil
}

// hostFrom extracts the host from POSTGRES_URL. The variable may hold either a
// bare hostname or a full connection URL; in the latter case only the host part
// is used, with credentials and port coming from the other POSTGRES_* variables.
func hostFrom(s string) string {
	if !strings.Contains(s, "://") {
		return s
	}
	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return s
	}
	return u.Hostname()
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
