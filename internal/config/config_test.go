package config

import (
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/cfb-dashboard/internal/testutil"
)

func TestLoadDefaults(t *testing.T) {
	nowFunc = testutil.NowAt(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))
	t.Cleanup(func() { nowFunc = time.Now })

	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.CFBD.BaseURL != defaultCFBDBaseURL {
		t.Fatalf("expected default cfbd base url %s, got %s", defaultCFBDBaseURL, cfg.CFBD.BaseURL)
	}
	if cfg.CFBD.APIKey != "" {
		t.Fatalf("expected empty cfbd api key by default, got %s", cfg.CFBD.APIKey)
	}
	if cfg.CFBD.Timeout != defaultCFBDTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultCFBDTimeout, cfg.CFBD.Timeout)
	}
	if cfg.Season.DefaultYear != 2024 || cfg.Season.DefaultType != "regular" {
		t.Fatalf("unexpected season defaults %+v", cfg.Season)
	}
	if len(cfg.HTTP.CORSAllowedOrigins) != 1 || cfg.HTTP.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard cors origin, got %v", cfg.HTTP.CORSAllowedOrigins)
	}
	if cfg.Metrics.ServiceName != "cfb-dashboard" {
		t.Fatalf("expected default service name, got %s", cfg.Metrics.ServiceName)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "cfbd")
	t.Setenv(envCFBDBaseURL, "http://example.com/api")
	t.Setenv(envCFBDAPIKey, "secret-key")
	t.Setenv(envCFBDTimeout, "3s")
	t.Setenv(envDefaultSeason, "2023")
	t.Setenv(envDefaultSeasonType, "postseason")
	t.Setenv(envCORSOrigins, "https://a.example, https://b.example ,")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != ProviderCFBD {
		t.Fatalf("expected provider cfbd, got %s", cfg.Provider)
	}
	if cfg.CFBD.BaseURL != "http://example.com/api" || cfg.CFBD.APIKey != "secret-key" {
		t.Fatalf("unexpected cfbd config %+v", cfg.CFBD)
	}
	if cfg.CFBD.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.CFBD.Timeout)
	}
	if cfg.Season.DefaultYear != 2023 || cfg.Season.DefaultType != "postseason" {
		t.Fatalf("unexpected season overrides %+v", cfg.Season)
	}
	if got := strings.Join(cfg.HTTP.CORSAllowedOrigins, "|"); got != "https://a.example|https://b.example" {
		t.Fatalf("unexpected cors origins %s", got)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected overrides to validate, got %v", err)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envCFBDTimeout, "not-a-duration")

	cfg := Load()

	if cfg.CFBD.Timeout != defaultCFBDTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.CFBD.Timeout)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envCFBDTimeout, "0s")

	cfg := Load()

	if cfg.CFBD.Timeout != defaultCFBDTimeout {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.CFBD.Timeout)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"unknown provider":    func(c *Config) { c.Provider = "espn" },
		"non-numeric port":    func(c *Config) { c.Port = "http" },
		"bad base url":        func(c *Config) { c.CFBD.BaseURL = "not a url" },
		"bad season type":     func(c *Config) { c.Season.DefaultType = "spring" },
		"season out of range": func(c *Config) { c.Season.DefaultYear = 1800 },
		"bad log format":      func(c *Config) { c.Logging.Format = "xml" },
		"no cors origins":     func(c *Config) { c.HTTP.CORSAllowedOrigins = nil },
		"port collision":      func(c *Config) { c.Metrics.Port = c.Port },
		"metrics no port":     func(c *Config) { c.Metrics.Port = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Load()
			mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error for %s", name)
			}
		})
	}
}

func TestValidateSkipsMetricsChecksWhenDisabled(t *testing.T) {
	cfg := Load()
	cfg.Metrics.Enabled = false
	cfg.Metrics.Port = cfg.Port

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected disabled metrics to skip port checks, got %v", err)
	}
}
