package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "POSTGRES_URL", "CATALOG_SOURCE", "TRAILS_CSV", "CATALOG_SKIP_MALFORMED",
		"DEFAULT_RECOMMENDATIONS", "MAX_RECOMMENDATIONS", "RECORD_SURVEYS", "RESULT_TTL", "REDIS_ADDR", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Port != "8080" || cfg.CatalogSource != SourceCSV || cfg.TrailsCSV != "data/trails_df.csv" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DefaultRecommendations != 3 || cfg.MaxRecommendations != 100 || cfg.ResultTTL != 30*time.Minute {
		t.Fatalf("unexpected numeric defaults: %+v", cfg)
	}
	if cfg.UsesDatabase() {
		t.Fatal("default config should not need a database")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "Postgres")
	t.Setenv("POSTGRES_URL", "postgres://localhost/hiking_db")
	t.Setenv("CATALOG_SKIP_MALFORMED", "true")
	t.Setenv("RESULT_TTL", "5m")
	t.Setenv("DEFAULT_RECOMMENDATIONS", "5")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.CatalogSource != SourcePostgres || !cfg.CatalogSkipMalformed || cfg.ResultTTL != 5*time.Minute || cfg.DefaultRecommendations != 5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if want := []string{"https://a.example", "https://b.example"}; !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Fatalf("origins = %v, want %v", cfg.CORSOrigins, want)
	}
	if !cfg.UsesDatabase() {
		t.Fatal("postgres catalog should need a database")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			CatalogSource:          SourceCSV,
			TrailsCSV:              "t.csv",
			DefaultRecommendations: 3,
			MaxRecommendations:     100,
			ResultTTL:              time.Minute,
			CORSOrigins:            []string{"http://localhost:3000", "https://hikes.example.com:8443"},
		}
	}
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown source", func(c *Config) { c.CatalogSource = "mysql" }},
		{"postgres without url", func(c *Config) { c.CatalogSource = SourcePostgres }},
		{"record surveys without url", func(c *Config) { c.RecordSurveys = true }},
		{"zero default", func(c *Config) { c.DefaultRecommendations = 0 }},
		{"max below default", func(c *Config) { c.MaxRecommendations = 2 }},
		{"zero ttl", func(c *Config) { c.ResultTTL = 0 }},
		{"origin without scheme", func(c *Config) { c.CORSOrigins = []string{"http://ok.example", "example.com"} }},
		{"origin with other scheme", func(c *Config) { c.CORSOrigins = []string{"ftp://example.com"} }},
		{"origin with wildcard", func(c *Config) { c.CORSOrigins = []string{"https://*.example.com"} }},
		{"no origins", func(c *Config) { c.CORSOrigins = nil }},
	}
	ok := base()
	if err := ok.Validate(); err != nil {
		t.Fatalf("base config invalid: %v", err)
	}
	for _, tc := range cases {
		c := base()
		tc.mutate(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestFromEnvRejectsBareOrigin(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("RECORD_SURVEYS", "")
	t.Setenv("CORS_ORIGINS", "example.com")

	if _, err := FromEnv(); err == nil || !strings.Contains(err.Error(), "CORS_ORIGINS") {
		t.Fatalf("expected CORS_ORIGINS error, got %v", err)
	}
}
