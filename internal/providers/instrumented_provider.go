package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/cfb-dashboard/internal/domain/raw"
	"github.com/preston-bernstein/cfb-dashboard/internal/logging"
)

// Endpoint labels used for metrics and logs.
const (
	EndpointGames    = "/games"
	EndpointTeams    = "/teams/fbs"
	EndpointStats    = "/stats/season"
	EndpointRankings = "/rankings"
)

// AttemptRecorder receives one observation per upstream call.
type AttemptRecorder interface {
	RecordProviderAttempt(provider, endpoint string, duration time.Duration, err error)
}

// instrumentedProvider wraps a DataProvider with timing, metrics and failure logging.
type instrumentedProvider struct {
	inner    DataProvider
	name     string
	logger   *slog.Logger
	recorder AttemptRecorder
	now      func() time.Time
}

// NewInstrumentedProvider decorates inner. A nil recorder disables metrics.
func NewInstrumentedProvider(inner DataProvider, name string, logger *slog.Logger, recorder AttemptRecorder) DataProvider {
	return &instrumentedProvider{
		inner:    inner,
		name:     name,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) FetchGames(ctx context.Context, q Query) ([]raw.Record, error) {
	return p.observe(ctx, EndpointGames, func() ([]raw.Record, error) {
		return p.inner.FetchGames(ctx, q)
	})
}

func (p *instrumentedProvider) FetchTeams(ctx context.Context, year int) ([]raw.Record, error) {
	return p.observe(ctx, EndpointTeams, func() ([]raw.Record, error) {
		return p.inner.FetchTeams(ctx, year)
	})
}

func (p *instrumentedProvider) FetchSeasonStats(ctx context.Context, q Query) ([]raw.Record, error) {
	return p.observe(ctx, EndpointStats, func() ([]raw.Record, error) {
		return p.inner.FetchSeasonStats(ctx, q)
	})
}

func (p *instrumentedProvider) FetchRankings(ctx context.Context, q Query) ([]raw.Record, error) {
	return p.observe(ctx, EndpointRankings, func() ([]raw.Record, error) {
		return p.inner.FetchRankings(ctx, q)
	})
}

func (p *instrumentedProvider) observe(ctx context.Context, endpoint string, fetch func() ([]raw.Record, error)) ([]raw.Record, error) {
	start := p.now()
	records, err := fetch()
	duration := p.now().Sub(start)

	if p.recorder != nil {
		p.recorder.RecordProviderAttempt(p.name, endpoint, duration, err)
	}

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		logWithProvider(ctx, logger, slog.LevelWarn, p.name, "provider fetch failed",
			slog.String(logging.FieldEndpoint, endpoint),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			slog.Any("err", err),
		)
		return nil, err
	}

	logWithProvider(ctx, logger, slog.LevelDebug, p.name, "provider fetch complete",
		slog.String(logging.FieldEndpoint, endpoint),
		slog.Int(logging.FieldCount, len(records)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return records, nil
}
