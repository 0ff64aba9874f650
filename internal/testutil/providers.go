package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/cfb-dashboard/internal/domain/raw"
	"github.com/preston-bernstein/cfb-dashboard/internal/providers"
)

// StubProvider serves canned records per endpoint and counts calls.
// A non-nil error for an endpoint is returned instead of its records.
type StubProvider struct {
	Games    []raw.Record
	Teams    []raw.Record
	Stats    []raw.Record
	Rankings []raw.Record
	Errs     map[string]error

	mu    sync.Mutex
	calls map[string]int
}

func (p *StubProvider) FetchGames(ctx context.Context, q providers.Query) ([]raw.Record, error) {
	return p.serve(ctx, providers.EndpointGames, p.Games)
}

func (p *StubProvider) FetchTeams(ctx context.Context, year int) ([]raw.Record, error) {
	return p.serve(ctx, providers.EndpointTeams, p.Teams)
}

func (p *StubProvider) FetchSeasonStats(ctx context.Context, q providers.Query) ([]raw.Record, error) {
	return p.serve(ctx, providers.EndpointStats, p.Stats)
}

func (p *StubProvider) FetchRankings(ctx context.Context, q providers.Query) ([]raw.Record, error) {
	return p.serve(ctx, providers.EndpointRankings, p.Rankings)
}

// Calls returns how many times endpoint was fetched.
func (p *StubProvider) Calls(endpoint string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[endpoint]
}

func (p *StubProvider) serve(ctx context.Context, endpoint string, records []raw.Record) ([]raw.Record, error) {
	p.mu.Lock()
	if p.calls == nil {
		p.calls = make(map[string]int)
	}
	p.calls[endpoint]++
	err := p.Errs[endpoint]
	p.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	return records, nil
}

// ErrProvider fails every endpoint with Err.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchGames(context.Context, providers.Query) ([]raw.Record, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchTeams(context.Context, int) ([]raw.Record, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchSeasonStats(context.Context, providers.Query) ([]raw.Record, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchRankings(context.Context, providers.Query) ([]raw.Record, error) {
	return nil, p.Err
}
