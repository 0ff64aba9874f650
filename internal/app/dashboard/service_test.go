package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/cfb-dashboard/internal/domain/rankings"
	"github.com/preston-bernstein/cfb-dashboard/internal/domain/raw"
	"github.com/preston-bernstein/cfb-dashboard/internal/providers"
	"github.com/preston-bernstein/cfb-dashboard/internal/providers/fixture"
	"github.com/preston-bernstein/cfb-dashboard/internal/testutil"
)

type build struct {
	page     string
	duration time.Duration
	err      error
}

type buildRecorder struct {
	builds []build
}

func (r *buildRecorder) RecordDashboardBuild(page string, duration time.Duration, err error) {
	r.builds = append(r.builds, build{page: page, duration: duration, err: err})
}

// failingProvider wraps the fixture and fails the stats endpoint.
type failingProvider struct {
	*fixture.Provider
	err       error
	lastGames providers.Query
}

func (f *failingProvider) FetchGames(ctx context.Context, q providers.Query) ([]raw.Record, error) {
	f.lastGames = q
	return f.Provider.FetchGames(ctx, q)
}

func (f *failingProvider) FetchSeasonStats(context.Context, providers.Query) ([]raw.Record, error) {
	return nil, f.err
}

// queryRecorder wraps the fixture and remembers the query each endpoint saw.
type queryRecorder struct {
	*fixture.Provider
	mu      sync.Mutex
	queries map[string]providers.Query
}

func newQueryRecorder() *queryRecorder {
	return &queryRecorder{Provider: fixture.New(), queries: make(map[string]providers.Query)}
}

func (r *queryRecorder) record(endpoint string, q providers.Query) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries[endpoint] = q
}

func (r *queryRecorder) FetchGames(ctx context.Context, q providers.Query) ([]raw.Record, error) {
	r.record(providers.EndpointGames, q)
	return r.Provider.FetchGames(ctx, q)
}

func (r *queryRecorder) FetchSeasonStats(ctx context.Context, q providers.Query) ([]raw.Record, error) {
	r.record(providers.EndpointStats, q)
	return r.Provider.FetchSeasonStats(ctx, q)
}

func (r *queryRecorder) FetchRankings(ctx context.Context, q providers.Query) ([]raw.Record, error) {
	r.record(providers.EndpointRankings, q)
	return r.Provider.FetchRankings(ctx, q)
}

func newFixtureService(rec BuildRecorder) *Service {
	return NewService(fixture.New(), nil, rec)
}

func TestScheduleResolvesLogosAndFlags(t *testing.T) {
	rec := &buildRecorder{}
	svc := newFixtureService(rec)

	view, err := svc.Schedule(context.Background(), Params{Year: 2024, Week: 1, SeasonType: "regular"})
	require.NoError(t, err)
	require.Len(t, view.Games, 4)

	first := view.Games[0]
	assert.Equal(t, "Georgia", first.Home.Name)
	require.NotNil(t, first.Home.Logo)
	assert.Contains(t, *first.Home.Logo, "/61.png")
	assert.Equal(t, "Samford", first.Away.Name)
	assert.Nil(t, first.Away.Logo)
	assert.False(t, first.Away.FBS)
	assert.True(t, first.Completed)

	miami := view.Games[1].Away
	assert.Equal(t, "Miami (FL)", miami.Name)
	require.NotNil(t, miami.Logo)
	assert.Contains(t, *miami.Logo, "/2390.png")

	samford, ok := view.Logos["Samford"]
	assert.True(t, ok, "every schedule name gets a key")
	assert.Nil(t, samford)
	_, ok = view.Logos["Texas A&M"]
	assert.True(t, ok, "directory schools are added to the logo map")

	require.Len(t, rec.builds, 1)
	assert.Equal(t, PageSchedule, rec.builds[0].page)
	assert.NoError(t, rec.builds[0].err)
}

func TestScheduleOrdersByWeekThenKickoff(t *testing.T) {
	view, err := newFixtureService(nil).Schedule(context.Background(), Params{Year: 2024})
	require.NoError(t, err)
	require.NotEmpty(t, view.Games)

	for i := 1; i < len(view.Games); i++ {
		prev, cur := view.Games[i-1], view.Games[i]
		if prev.Week == cur.Week {
			assert.LessOrEqual(t, prev.StartDate, cur.StartDate)
		} else {
			assert.Less(t, prev.Week, cur.Week)
		}
	}
	last := view.Games[len(view.Games)-1]
	assert.False(t, last.Completed)
}

func TestStandingsSortsByRatingWinsThenName(t *testing.T) {
	view, err := newFixtureService(nil).Standings(context.Background(), Params{Year: 2024, Week: 1})
	require.NoError(t, err)

	names := make([]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		names = append(names, row.Team)
	}
	assert.Equal(t, []string{
		"Bama", "Georgia", "Miami (FL)", "Ohio St.", "Texas", "Texas A&M",
		"Michigan",
		"Alabama", "Georgia Bulldogs", "Ohio State", "Oregon", "Samford",
	}, names, "week is ignored so the whole season counts")

	bama := view.Rows[0]
	assert.Equal(t, "SEC", bama.Conference)
	require.NotNil(t, bama.Logo)
	assert.Equal(t, 1.0, bama.Rating)

	michigan := view.Rows[6]
	assert.Equal(t, 1, michigan.Wins)
	assert.Equal(t, 1, michigan.Losses)
	assert.InDelta(t, 0.5, michigan.Rating, 1e-9)

	samford := view.Rows[len(view.Rows)-1]
	assert.Empty(t, samford.Conference)
	assert.Nil(t, samford.Logo)
}

func TestStatsAveragesFBSTeamsOnly(t *testing.T) {
	view, err := newFixtureService(nil).Stats(context.Background(), Params{Year: 2024})
	require.NoError(t, err)

	assert.Equal(t, []string{"totalYards", "rushingYards", "netPassingYards", "turnovers"}, view.StatNames)

	byTeam := make(map[string]StatsRow, len(view.Rows))
	for _, row := range view.Rows {
		byTeam[row.Team] = row
	}
	assert.NotContains(t, byTeam, "Samford")
	require.Contains(t, byTeam, "Georgia")
	assert.Equal(t, 1150.0, byTeam["Georgia"].Averages["totalYards"])

	oregon := byTeam["Oregon"]
	assert.Equal(t, 2, oregon.Games)
	assert.Equal(t, 410.0, oregon.Averages["totalYards"])
	assert.Equal(t, 1.5, oregon.Averages["turnovers"])

	miami := byTeam["Miami"]
	assert.Empty(t, miami.Averages, "non-numeric stats are skipped")
	assert.Equal(t, 0, miami.Games)

	assert.Equal(t, "Alabama", view.Rows[0].Team)
}

func TestRankingsModes(t *testing.T) {
	svc := newFixtureService(nil)

	latest, err := svc.Rankings(context.Background(), Params{Year: 2024}, rankings.ModeLatest)
	require.NoError(t, err)
	require.Len(t, latest.Weeks, 1)
	assert.Equal(t, 3, latest.Weeks[0].Week)
	assert.Equal(t, "Texas", latest.Weeks[0].Coaches[0].Team)
	require.NotNil(t, latest.Logos["Texas"])

	all, err := svc.Rankings(context.Background(), Params{Year: 2024}, rankings.ModeAll)
	require.NoError(t, err)
	require.Len(t, all.Weeks, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all.Weeks[0].Week, all.Weeks[1].Week, all.Weeks[2].Week})
	assert.NotNil(t, all.Weeks[0].Coaches)
	assert.Empty(t, all.Weeks[0].Coaches)
	assert.Equal(t, rankings.ModeAll, all.Mode)
}

func TestStatsFailsOnFirstUpstreamError(t *testing.T) {
	upstream := &providers.UpstreamError{Provider: "cfbd", Endpoint: providers.EndpointStats, StatusCode: 503}
	rec := &buildRecorder{}
	provider := &failingProvider{Provider: fixture.New(), err: upstream}
	svc := NewService(provider, nil, rec)

	_, err := svc.Stats(context.Background(), Params{Year: 2024, Week: 4})
	require.Error(t, err)
	assert.True(t, errors.Is(err, upstream))
	assert.Contains(t, err.Error(), "build stats")
	up, ok := providers.AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, 503, up.StatusCode)

	require.Len(t, rec.builds, 1)
	assert.Equal(t, PageStats, rec.builds[0].page)
	assert.Error(t, rec.builds[0].err)
}

func TestStatsFetchesWholeSeasonGames(t *testing.T) {
	provider := &failingProvider{Provider: fixture.New()}
	svc := NewService(provider, nil, nil)

	_, err := svc.Stats(context.Background(), Params{Year: 2024, Week: 4})
	require.NoError(t, err)
	assert.Equal(t, 0, provider.lastGames.Week)
	assert.Equal(t, 2024, provider.lastGames.Year)
}

func TestServiceWithoutProvider(t *testing.T) {
	svc := NewService(nil, nil, nil)
	_, err := svc.Schedule(context.Background(), Params{Year: 2024})
	assert.True(t, errors.Is(err, providers.ErrProviderUnavailable))
}

func TestBuildRecordsDurationFromClock(t *testing.T) {
	rec := &buildRecorder{}
	svc := newFixtureService(rec)
	svc.now = testutil.Ticker(time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC), 40*time.Millisecond)

	_, err := svc.Rankings(context.Background(), Params{Year: 2024, SeasonType: "regular"}, rankings.ModeLatest)
	require.NoError(t, err)

	require.Len(t, rec.builds, 1)
	assert.Equal(t, PageRankings, rec.builds[0].page)
	assert.Equal(t, 40*time.Millisecond, rec.builds[0].duration)
	assert.NoError(t, rec.builds[0].err)
}

func TestStatsGamesAndTotalsShareQuery(t *testing.T) {
	for _, seasonType := range []string{"regular", "postseason", "both"} {
		t.Run(seasonType, func(t *testing.T) {
			prov := newQueryRecorder()
			svc := NewService(prov, nil, nil)

			_, err := svc.Stats(context.Background(), Params{Year: 2024, Week: 4, SeasonType: seasonType})
			require.NoError(t, err)

			games := prov.queries[providers.EndpointGames]
			totals := prov.queries[providers.EndpointStats]
			assert.Equal(t, games, totals)
			assert.Equal(t, seasonType, totals.SeasonType)
			assert.Zero(t, totals.Week)
		})
	}
}

func TestRankingsIgnoresWeek(t *testing.T) {
	prov := newQueryRecorder()
	svc := NewService(prov, nil, nil)

	view, err := svc.Rankings(context.Background(), Params{Year: 2024, Week: 2, SeasonType: "regular"}, rankings.ModeAll)
	require.NoError(t, err)

	assert.Zero(t, prov.queries[providers.EndpointRankings].Week)
	assert.Zero(t, view.Params.Week)
	assert.Len(t, view.Weeks, 3)
}
