package server

import (
	"time"

	"github.com/preston-bernstein/cfb-dashboard/internal/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	idleTimeout       = 60 * time.Second
	metricsPath       = "/metrics"

	// writeSlack covers rendering after the slowest upstream call returns.
	writeSlack = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor leaves room for a full upstream timeout before the response is cut off.
func writeTimeoutFor(cfg config.Config) time.Duration {
	if cfg.CFBD.Timeout <= 0 {
		return readTimeout + writeSlack
	}
	return cfg.CFBD.Timeout + writeSlack
}
