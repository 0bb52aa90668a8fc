package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Catalog sources.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

type Config struct {
	Port    string
	AppEnv  string
	GinMode string

	PostgresURL string

	CatalogSource        string
	TrailsCSV            string
	CatalogSkipMalformed bool

	DefaultRecommendations int
	MaxRecommendations     int
	RecordSurveys          bool

	ResultTTL time.Duration
	RedisAddr string

	CORSOrigins []string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the config from the environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:                   getEnvWithDefault("PORT", "8080"),
		AppEnv:                 getEnvWithDefault("APP_ENV", "development"),
		GinMode:                getEnvWithDefault("GIN_MODE", "debug"),
		PostgresURL:            strings.TrimSpace(os.Getenv("POSTGRES_URL")),
		CatalogSource:          strings.ToLower(getEnvWithDefault("CATALOG_SOURCE", SourceCSV)),
		TrailsCSV:              getEnvWithDefault("TRAILS_CSV", "data/trails_df.csv"),
		CatalogSkipMalformed:   getEnvBool("CATALOG_SKIP_MALFORMED", false),
		DefaultRecommendations: getEnvInt("DEFAULT_RECOMMENDATIONS", 3),
		MaxRecommendations:     getEnvInt("MAX_RECOMMENDATIONS", 100),
		RecordSurveys:          getEnvBool("RECORD_SURVEYS", false),
		ResultTTL:              getEnvDuration("RESULT_TTL", 30*time.Minute),
		RedisAddr:              strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		CORSOrigins:            getEnvList("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.CatalogSource {
	case SourceCSV:
		if c.TrailsCSV == "" {
			return errors.New("TRAILS_CSV is required when CATALOG_SOURCE=csv")
		}
	case SourcePostgres:
		if c.PostgresURL == "" {
			return errors.New("POSTGRES_URL is required when CATALOG_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("unsupported CATALOG_SOURCE %q. Use 'csv' or 'postgres'", c.CatalogSource)
	}
	if c.RecordSurveys && c.PostgresURL == "" {
		return errors.New("POSTGRES_URL is required when RECORD_SURVEYS=true")
	}
	if c.DefaultRecommendations < 1 {
		return fmt.Errorf("DEFAULT_RECOMMENDATIONS must be positive, got %d", c.DefaultRecommendations)
	}
	if c.MaxRecommendations < c.DefaultRecommendations {
		return fmt.Errorf("MAX_RECOMMENDATIONS (%d) is below DEFAULT_RECOMMENDATIONS (%d)", c.MaxRecommendations, c.DefaultRecommendations)
	}
	if c.ResultTTL <= 0 {
		return errors.New("RESULT_TTL must be positive")
	}
	if len(c.CORSOrigins) == 0 {
		return errors.New("CORS_ORIGINS must list at least one origin")
	}
	for _, origin := range c.CORSOrigins {
		if err := validateOrigin(origin); err != nil {
			return fmt.Errorf("CORS_ORIGINS: %w", err)
		}
	}
	return nil
}

// validateOrigin accepts "*" or an absolute http(s) origin without
// wildcards, the forms the CORS middleware is configured for.
func validateOrigin(origin string) error {
	if origin == "*" {
		return nil
	}
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin %q: %w", origin, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || strings.Contains(origin, "*") {
		return fmt.Errorf("invalid origin %q: want http://host or https://host", origin)
	}
	return nil
}

// UsesDatabase reports whether any component needs a Postgres connection.
func (c *Config) UsesDatabase() bool {
	return c.CatalogSource == SourcePostgres || c.RecordSurveys
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getEnvList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
