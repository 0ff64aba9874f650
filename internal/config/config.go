package config

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port     string `validate:"required,numeric"`
	Provider string `validate:"oneof=fixture cfbd"`
	CFBD     CFBDConfig
	Season   SeasonConfig
	HTTP     HTTPConfig
	Metrics  MetricsConfig
	Logging  LoggingConfig
}

// CFBDConfig controls the CollegeFootballData client.
type CFBDConfig struct {
	BaseURL string   `validate:"required,url"`
	APIKey  string
	Timeout Duration `validate:"gt=0"`
}

// SeasonConfig supplies defaults when a request omits season parameters.
type SeasonConfig struct {
	DefaultYear int    `validate:"min=1869,max=2100"`
	DefaultType string `validate:"oneof=regular postseason both"`
}

// HTTPConfig controls the public listener.
type HTTPConfig struct {
	CORSAllowedOrigins []string `validate:"min=1,dive,required"`
}

// LoggingConfig controls log level and handler format.
type LoggingConfig struct {
	Level  string `validate:"oneof=debug info warn warning error"`
	Format string `validate:"oneof=text json"`
}

var (
	nowFunc  = time.Now
	validate = validator.New()
)

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		CFBD:     loadCFBD(),
		Season:   loadSeason(),
		HTTP:     HTTPConfig{CORSAllowedOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins)},
		Metrics:  loadMetrics(),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}

// Validate checks field constraints and cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if !c.Metrics.Enabled {
		return nil
	}
	if c.Metrics.Port == "" {
		return errors.New("invalid config: metrics enabled without a port")
	}
	if c.Metrics.Port == c.Port {
		return errors.Newf("invalid config: metrics port %s collides with http port", c.Metrics.Port)
	}
	return nil
}

func loadCFBD() CFBDConfig {
	return CFBDConfig{
		BaseURL: envOrDefault(envCFBDBaseURL, defaultCFBDBaseURL),
		APIKey:  envOrDefault(envCFBDAPIKey, ""),
		Timeout: durationEnvOrDefault(envCFBDTimeout, defaultCFBDTimeout),
	}
}

func loadSeason() SeasonConfig {
	return SeasonConfig{
		DefaultYear: intEnvOrDefault(envDefaultSeason, nowFunc().Year()),
		DefaultType: envOrDefault(envDefaultSeasonType, defaultSeasonType),
	}
}
