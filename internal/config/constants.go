package config

import "time"

const (
	envPort              = "PORT"
	envProvider          = "PROVIDER"
	envCFBDBaseURL       = "CFBD_BASE_URL"
	envCFBDAPIKey        = "CFBD_API_KEY"
	envCFBDTimeout       = "CFBD_TIMEOUT"
	envDefaultSeason     = "DEFAULT_SEASON"
	envDefaultSeasonType = "DEFAULT_SEASON_TYPE"
	envCORSOrigins       = "CORS_ALLOWED_ORIGINS"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel          = "LOG_LEVEL"
	envLogFormat         = "LOG_FORMAT"

	defaultPort        = "4000"
	defaultProvider    = ProviderFixture
	defaultCFBDBaseURL = "https://api.collegefootballdata.com"
	defaultCFBDTimeout = 10 * Duration(time.Second)
	defaultSeasonType  = "regular"
	defaultCORSOrigins = "*"
	defaultMetricsPort = "9090"
	defaultServiceName = "cfb-dashboard"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)

// Provider names accepted by PROVIDER.
const (
	ProviderFixture = "fixture"
	ProviderCFBD    = "cfbd"
)
