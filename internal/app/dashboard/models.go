package dashboard

import (
	"github.com/preston-bernstein/cfb-dashboard/internal/domain/rankings"
	"github.com/preston-bernstein/cfb-dashboard/internal/domain/stats"
	"github.com/preston-bernstein/cfb-dashboard/internal/domain/teams"
	"github.com/preston-bernstein/cfb-dashboard/internal/providers"
)

// Page names used for metrics and error wrapping.
const (
	PageSchedule  = "schedule"
	PageStandings = "standings"
	PageStats     = "stats"
	PageRankings  = "rankings"
)

// Params scopes a dashboard page to a season. Week 0 means the whole season.
type Params struct {
	Year       int    `json:"year"`
	Week       int    `json:"week,omitempty"`
	SeasonType string `json:"seasonType"`
}

func (p Params) query() providers.Query {
	return providers.Query{Year: p.Year, Week: p.Week, SeasonType: p.SeasonType}
}

// seasonQuery drops the week so season-wide aggregates see every game.
func (p Params) seasonQuery() providers.Query {
	q := p.query()
	q.Week = 0
	return q
}

// TeamRef is a schedule participant with its resolved logo.
type TeamRef struct {
	Name string  `json:"name"`
	Logo *string `json:"logo"`
	FBS  bool    `json:"fbs"`
}

// ScheduleRow is one game as displayed on the schedule.
type ScheduleRow struct {
	ID         int      `json:"id"`
	Week       int      `json:"week"`
	StartDate  string   `json:"startDate,omitempty"`
	Home       TeamRef  `json:"home"`
	Away       TeamRef  `json:"away"`
	HomePoints *float64 `json:"homePoints"`
	AwayPoints *float64 `json:"awayPoints"`
	Completed  bool     `json:"completed"`
}

// ScheduleView is the schedule page model.
type ScheduleView struct {
	Params Params        `json:"params"`
	Games  []ScheduleRow `json:"games"`
	Logos  teams.LogoMap `json:"logos"`
}

// StandingRow is one team's record and rating.
type StandingRow struct {
	Team       string  `json:"team"`
	Conference string  `json:"conference,omitempty"`
	Logo       *string `json:"logo"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Rating     float64 `json:"rating"`
}

// StandingsView is the standings page model, ordered by rating then wins then name.
type StandingsView struct {
	Params Params        `json:"params"`
	Rows   []StandingRow `json:"rows"`
}

// StatsRow is one FBS team's per-game averages.
type StatsRow struct {
	Team     string        `json:"team"`
	Logo     *string       `json:"logo"`
	Games    int           `json:"games"`
	Averages stats.StatRow `json:"averages"`
}

// StatsView is the stats page model. StatNames lists columns in first-seen order.
type StatsView struct {
	Params    Params     `json:"params"`
	StatNames []string   `json:"statNames"`
	Rows      []StatsRow `json:"rows"`
}

// RankingsView is the rankings page model.
type RankingsView struct {
	Params Params                `json:"params"`
	Mode   rankings.Mode         `json:"mode"`
	Weeks  []rankings.PollBucket `json:"weeks"`
	Logos  teams.LogoMap         `json:"logos"`
}
