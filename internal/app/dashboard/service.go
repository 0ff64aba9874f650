package dashboard

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/preston-bernstein/cfb-dashboard/internal/domain/games"
	"github.com/preston-bernstein/cfb-dashboard/internal/domain/rankings"
	"github.com/preston-bernstein/cfb-dashboard/internal/domain/raw"
	"github.com/preston-bernstein/cfb-dashboard/internal/domain/stats"
	"github.com/preston-bernstein/cfb-dashboard/internal/domain/teams"
	"github.com/preston-bernstein/cfb-dashboard/internal/logging"
	"github.com/preston-bernstein/cfb-dashboard/internal/providers"
)

// BuildRecorder observes one page build.
type BuildRecorder interface {
	RecordDashboardBuild(page string, duration time.Duration, err error)
}

// Service fetches upstream data for a page and shapes it into a view model.
// Nothing is cached; every call goes upstream.
type Service struct {
	provider providers.DataProvider
	logger   *slog.Logger
	recorder BuildRecorder
	now      func() time.Time
}

// NewService constructs a Service. A nil recorder disables build metrics.
func NewService(provider providers.DataProvider, logger *slog.Logger, recorder BuildRecorder) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Schedule returns the games for p with resolved logos and FBS flags.
func (s *Service) Schedule(ctx context.Context, p Params) (ScheduleView, error) {
	var view ScheduleView
	err := s.build(ctx, PageSchedule, func() error {
		data, err := s.fetch(ctx, p.query(), needGames|needTeams)
		if err != nil {
			return err
		}
		dir := teams.BuildDirectory(teams.MetasFromRecords(data.teams))
		gs := games.FromRecords(data.games)
		logos := teams.BuildLogoMap(games.TeamNames(gs), dir)

		sort.SliceStable(gs, func(i, j int) bool {
			if gs[i].Week != gs[j].Week {
				return gs[i].Week < gs[j].Week
			}
			return gs[i].StartDate < gs[j].StartDate
		})

		rows := make([]ScheduleRow, 0, len(gs))
		for _, g := range gs {
			rows = append(rows, ScheduleRow{
				ID:         g.ID,
				Week:       g.Week,
				StartDate:  g.StartDate,
				Home:       TeamRef{Name: g.HomeTeam, Logo: logos[g.HomeTeam], FBS: g.HomeClassification.IsFBS()},
				Away:       TeamRef{Name: g.AwayTeam, Logo: logos[g.AwayTeam], FBS: g.AwayClassification.IsFBS()},
				HomePoints: g.HomePoints,
				AwayPoints: g.AwayPoints,
				Completed:  g.Completed(),
			})
		}
		view = ScheduleView{Params: p, Games: rows, Logos: logos}
		return nil
	})
	return view, err
}

// Standings returns season records and ratings joined with directory data.
func (s *Service) Standings(ctx context.Context, p Params) (StandingsView, error) {
	var view StandingsView
	err := s.build(ctx, PageStandings, func() error {
		data, err := s.fetch(ctx, p.seasonQuery(), needGames|needTeams)
		if err != nil {
			return err
		}
		dir := teams.BuildDirectory(teams.MetasFromRecords(data.teams))
		records := games.AggregateRecords(games.FromRecords(data.games))
		ratings := games.Ratings(records)

		rows := make([]StandingRow, 0, len(records))
		for team, rec := range records {
			row := StandingRow{
				Team:   team,
				Wins:   rec.Wins,
				Losses: rec.Losses,
				Rating: ratings[team],
			}
			if entry, ok := dir.Lookup(team); ok {
				row.Conference = entry.Conference
				row.Logo = entry.PrimaryLogo
			}
			rows = append(rows, row)
		}
		sortStandings(rows)
		view = StandingsView{Params: p, Rows: rows}
		return nil
	})
	return view, err
}

// Stats returns per-game averages for FBS teams.
func (s *Service) Stats(ctx context.Context, p Params) (StatsView, error) {
	var view StatsView
	err := s.build(ctx, PageStats, func() error {
		data, err := s.fetch(ctx, p.seasonQuery(), needGames|needTeams|needStats)
		if err != nil {
			return err
		}
		dir := teams.BuildDirectory(teams.MetasFromRecords(data.teams))
		completed := games.CompletedCounts(games.AggregateRecords(games.FromRecords(data.games)))
		lines := stats.GroupSeasonStats(data.stats)
		averages := stats.AverageStats(lines, completed, dir.FBSSet())

		view = StatsView{Params: p, StatNames: statNames(lines, averages), Rows: make([]StatsRow, 0, len(averages))}
		for _, line := range lines {
			row, ok := averages[line.Team]
			if !ok {
				continue
			}
			view.Rows = append(view.Rows, StatsRow{
				Team:     line.Team,
				Logo:     teams.ResolveLogo(line.Team, dir),
				Games:    completed[teams.Normalize(line.Team)],
				Averages: row,
			})
		}
		sort.SliceStable(view.Rows, func(i, j int) bool {
			return view.Rows[i].Team < view.Rows[j].Team
		})
		return nil
	})
	return view, err
}

// Rankings returns the tracked polls for the season. Mode picks the weeks, so
// any week in p is dropped.
func (s *Service) Rankings(ctx context.Context, p Params, mode rankings.Mode) (RankingsView, error) {
	var view RankingsView
	p.Week = 0
	err := s.build(ctx, PageRankings, func() error {
		data, err := s.fetch(ctx, p.seasonQuery(), needRankings|needTeams)
		if err != nil {
			return err
		}
		dir := teams.BuildDirectory(teams.MetasFromRecords(data.teams))
		weeks := rankings.ExtractPolls(data.rankings, mode)
		view = RankingsView{
			Params: p,
			Mode:   mode,
			Weeks:  weeks,
			Logos:  teams.BuildLogoMap(rankedTeams(weeks), dir),
		}
		return nil
	})
	return view, err
}

func (s *Service) build(ctx context.Context, page string, fn func() error) error {
	start := s.now()
	err := fn()
	duration := s.now().Sub(start)

	if s.recorder != nil {
		s.recorder.RecordDashboardBuild(page, duration, err)
	}

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Warn(logger, "dashboard build failed",
			slog.String(logging.FieldPage, page),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			slog.Any("err", err),
		)
		return errors.Wrapf(err, "build %s", page)
	}
	return nil
}

type need uint8

const (
	needGames need = 1 << iota
	needTeams
	needStats
	needRankings
)

type fetched struct {
	games    []raw.Record
	teams    []raw.Record
	stats    []raw.Record
	rankings []raw.Record
}

// fetch issues the needed upstream calls concurrently. The first failure
// cancels the rest and is returned.
func (s *Service) fetch(ctx context.Context, q providers.Query, needs need) (fetched, error) {
	var out fetched
	if s.provider == nil {
		return out, providers.ErrProviderUnavailable
	}

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	if needs&needGames != 0 {
		p.Go(func(ctx context.Context) error {
			var err error
			out.games, err = s.provider.FetchGames(ctx, q)
			return err
		})
	}
	if needs&needTeams != 0 {
		p.Go(func(ctx context.Context) error {
			var err error
			out.teams, err = s.provider.FetchTeams(ctx, q.Year)
			return err
		})
	}
	if needs&needStats != 0 {
		p.Go(func(ctx context.Context) error {
			var err error
			out.stats, err = s.provider.FetchSeasonStats(ctx, q)
			return err
		})
	}
	if needs&needRankings != 0 {
		p.Go(func(ctx context.Context) error {
			var err error
			out.rankings, err = s.provider.FetchRankings(ctx, q)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return fetched{}, err
	}
	return out, nil
}

func sortStandings(rows []StandingRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.Team < b.Team
	})
}

// statNames collects stat columns across averaged teams in first-seen order.
func statNames(lines []stats.TeamStatLine, averages map[string]stats.StatRow) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, line := range lines {
		row, ok := averages[line.Team]
		if !ok {
			continue
		}
		for _, name := range line.Names() {
			if _, averaged := row[name]; !averaged {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

func rankedTeams(weeks []rankings.PollBucket) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	add := func(entries []rankings.RankEntry) {
		for _, e := range entries {
			if _, ok := seen[e.Team]; ok || e.Team == "" {
				continue
			}
			seen[e.Team] = struct{}{}
			names = append(names, e.Team)
		}
	}
	for _, w := range weeks {
		add(w.AP)
		add(w.Coaches)
	}
	return names
}
