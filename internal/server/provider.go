package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/cfb-dashboard/internal/config"
	"github.com/preston-bernstein/cfb-dashboard/internal/providers"
	"github.com/preston-bernstein/cfb-dashboard/internal/providers/cfbd"
	"github.com/preston-bernstein/cfb-dashboard/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case config.ProviderFixture, "":
		return fixture.New()
	case config.ProviderCFBD:
		return cfbd.NewClient(cfbd.Config{
			BaseURL:    cfg.CFBD.BaseURL,
			APIKey:     cfg.CFBD.APIKey,
			HTTPClient: &http.Client{Timeout: cfg.CFBD.Timeout},
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
