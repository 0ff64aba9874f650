package server

import (
	"log/slog"

	"github.com/preston-bernstein/cfb-dashboard/internal/config"
	"github.com/preston-bernstein/cfb-dashboard/internal/metrics"
	"github.com/preston-bernstein/cfb-dashboard/internal/providers"
)

// providerFactory assembles the provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	return providers.NewInstrumentedProvider(base, normalizeProviderName(cfg.Provider, base), f.logger, f.metrics)
}
