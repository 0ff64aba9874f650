package providers

import (
	"context"

	"github.com/preston-bernstein/cfb-dashboard/internal/domain/raw"
)

// Query scopes an upstream fetch. Week 0 means the whole season.
type Query struct {
	Year       int
	Week       int
	SeasonType string
}

// GameProvider fetches schedule entries.
type GameProvider interface {
	FetchGames(ctx context.Context, q Query) ([]raw.Record, error)
}

// TeamProvider fetches FBS team metadata for a season.
type TeamProvider interface {
	FetchTeams(ctx context.Context, year int) ([]raw.Record, error)
}

// StatsProvider fetches cumulative season stat rows.
type StatsProvider interface {
	FetchSeasonStats(ctx context.Context, q Query) ([]raw.Record, error)
}

// RankingProvider fetches weekly ranking snapshots.
type RankingProvider interface {
	FetchRankings(ctx context.Context, q Query) ([]raw.Record, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GameProvider
	TeamProvider
	StatsProvider
	RankingProvider
}
