package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/cfb-dashboard/internal/config"
	"github.com/preston-bernstein/cfb-dashboard/internal/logging"
	"github.com/preston-bernstein/cfb-dashboard/internal/server"
)

const (
	appName    = "cfb-dashboard"
	appVersion = "dev"
)

var exit = os.Exit

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: appName,
		Version: appVersion,
	})

	if err := cfg.Validate(); err != nil {
		logging.Error(logger, "invalid configuration", err)
		exit(1)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info(logger, "starting "+appName,
		logging.FieldProvider, cfg.Provider,
		logging.FieldSeason, cfg.Season.DefaultYear,
	)
	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
