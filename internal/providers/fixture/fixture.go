package fixture

import (
	"context"

	"github.com/preston-bernstein/cfb-dashboard/internal/domain/raw"
	"github.com/preston-bernstein/cfb-dashboard/internal/providers"
)

// Provider returns a static season useful for local testing and bootstrapping.
// Payloads mix snake_case and camelCase keys the way upstream responses do.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchGames returns a deterministic schedule, filtered by week when one is set.
func (p *Provider) FetchGames(ctx context.Context, q providers.Query) ([]raw.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all := fixtureGames()
	if q.Week <= 0 {
		return all, nil
	}
	out := make([]raw.Record, 0, len(all))
	for _, g := range all {
		if raw.Int(g, raw.NumberAt("week")) == q.Week {
			out = append(out, g)
		}
	}
	return out, nil
}

// FetchTeams returns a deterministic set of FBS teams.
func (p *Provider) FetchTeams(ctx context.Context, year int) ([]raw.Record, error) {
	_ = year
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fixtureTeams(), nil
}

// FetchSeasonStats returns cumulative season stat rows.
func (p *Provider) FetchSeasonStats(ctx context.Context, q providers.Query) ([]raw.Record, error) {
	_ = q
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fixtureStats(), nil
}

// FetchRankings returns weekly poll snapshots, filtered by week when one is set.
func (p *Provider) FetchRankings(ctx context.Context, q providers.Query) ([]raw.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all := fixtureRankings()
	if q.Week <= 0 {
		return all, nil
	}
	out := make([]raw.Record, 0, 1)
	for _, w := range all {
		if raw.Int(w, raw.NumberAt("week")) == q.Week {
			out = append(out, w)
		}
	}
	return out, nil
}

func logo(slug string) []any {
	return []any{
		"http://a.espncdn.com/i/teamlogos/ncaa/500/" + slug + ".png",
		"http://a.espncdn.com/i/teamlogos/ncaa/500-dark/" + slug + ".png",
	}
}

func fixtureTeams() []raw.Record {
	return []raw.Record{
		{"school": "Georgia", "mascot": "Bulldogs", "abbreviation": "UGA", "conference": "SEC", "alt_name1": "Georgia Bulldogs", "logos": logo("61")},
		{"school": "Alabama", "mascot": "Crimson Tide", "abbreviation": "ALA", "conference": "SEC", "alternateNames": []any{"Bama"}, "logos": logo("333")},
		{"school": "Texas", "mascot": "Longhorns", "abbreviation": "TEX", "conference": "SEC", "alt_name1": "UT", "logos": logo("251")},
		{"school": "Ohio State", "mascot": "Buckeyes", "abbreviation": "OSU", "conference": "Big Ten", "alt_name2": "Ohio St.", "logos": logo("194")},
		{"school": "Michigan", "mascot": "Wolverines", "abbreviation": "MICH", "conference": "Big Ten", "logos": logo("130")},
		{"school": "Oregon", "mascot": "Ducks", "abbreviation": "ORE", "conference": "Big Ten", "logos": logo("2483")},
		{"school": "Miami", "mascot": "Hurricanes", "abbreviation": "MIA", "conference": "ACC", "alternateNames": []any{"Miami (FL)"}, "logos": logo("2390")},
		{"school": "Texas A&M", "mascot": "Aggies", "abbreviation": "TA&M", "conference": "SEC", "logos": []any{}},
	}
}

func fixtureGames() []raw.Record {
	return []raw.Record{
		{"id": 401001.0, "week": 1.0, "start_date": "2024-08-31T16:00:00.000Z", "home_team": "Georgia", "home_classification": "fbs", "away_team": "Samford", "away_classification": "fcs", "home_points": 45.0, "away_points": 3.0},
		{"id": 401002.0, "week": 1.0, "start_date": "2024-08-31T19:30:00.000Z", "home_team": "Ohio State", "home_classification": "fbs", "away_team": "Miami (FL)", "away_classification": "fbs", "home_points": 24.0, "away_points": 27.0},
		{"id": 401003.0, "week": 1.0, "startDate": "2024-08-31T23:30:00.000Z", "homeTeam": "Texas", "homeClassification": "fbs", "awayTeam": "Oregon", "awayClassification": "fbs", "homePoints": 31.0, "awayPoints": 28.0},
		{"id": 401004.0, "week": 1.0, "start_date": "2024-09-01T00:00:00.000Z", "home_team": "Alabama", "home_classification": "fbs", "away_team": "Michigan", "away_classification": "fbs", "home_points": 17.0, "away_points": 17.0},
		{"id": 401005.0, "week": 2.0, "start_date": "2024-09-07T16:00:00.000Z", "home_team": "Michigan", "home_classification": "fbs", "away_team": "Texas A&M", "away_classification": "fbs", "home_points": 20.0, "away_points": 24.0},
		{"id": 401006.0, "week": 2.0, "start_date": "2024-09-07T19:30:00.000Z", "home_team": "Oregon", "home_classification": "fbs", "away_team": "Ohio St.", "away_classification": "fbs", "home_points": 10.0, "away_points": 35.0},
		{"id": 401007.0, "week": 2.0, "startDate": "2024-09-07T23:00:00.000Z", "homeTeam": "Georgia Bulldogs", "homeClassification": "fbs", "awayTeam": "Bama", "awayClassification": "fbs", "homePoints": 30.0, "awayPoints": 33.0},
		{"id": 401008.0, "week": 3.0, "start_date": "2024-09-14T19:30:00.000Z", "home_team": "Miami", "home_classification": "fbs", "away_team": "Texas", "away_classification": "fbs", "home_points": nil, "away_points": nil},
		{"id": 401009.0, "week": 3.0, "start_date": "2024-09-14T23:00:00.000Z", "home_team": "Alabama", "home_classification": "fbs", "away_team": "Western Kentucky", "away_classification": "fbs", "home_points": nil, "away_points": nil},
	}
}

func fixtureStats() []raw.Record {
	rows := []raw.Record{}
	add := func(team string, snake bool, stats map[string]float64, order []string) {
		for _, name := range order {
			if snake {
				rows = append(rows, raw.Record{"season": 2024.0, "team": team, "stat_name": name, "stat_value": stats[name]})
			} else {
				rows = append(rows, raw.Record{"season": 2024.0, "team": team, "statName": name, "statValue": stats[name]})
			}
		}
	}
	order := []string{"totalYards", "rushingYards", "netPassingYards", "turnovers"}
	add("Georgia", true, map[string]float64{"totalYards": 1150, "rushingYards": 420, "netPassingYards": 730, "turnovers": 3}, order)
	add("Alabama", false, map[string]float64{"totalYards": 980, "rushingYards": 390, "netPassingYards": 590, "turnovers": 2}, order)
	add("Texas", true, map[string]float64{"totalYards": 880, "rushingYards": 300, "netPassingYards": 580, "turnovers": 1}, order)
	add("Ohio State", false, map[string]float64{"totalYards": 910, "rushingYards": 410, "netPassingYards": 500, "turnovers": 2}, order)
	add("Michigan", true, map[string]float64{"totalYards": 600, "rushingYards": 340, "netPassingYards": 260, "turnovers": 4}, order)
	add("Oregon", false, map[string]float64{"totalYards": 820, "rushingYards": 250, "netPassingYards": 570, "turnovers": 3}, order)
	add("Samford", true, map[string]float64{"totalYards": 210, "rushingYards": 80, "netPassingYards": 130, "turnovers": 4}, order)
	rows = append(rows, raw.Record{"season": 2024.0, "team": "Miami", "stat_name": "possessionTime", "stat_value": "31:12"})
	return rows
}

func rank(r int, school, conference string, points, firstPlace int) any {
	return map[string]any{
		"rank":            float64(r),
		"school":          school,
		"conference":      conference,
		"points":          float64(points),
		"firstPlaceVotes": float64(firstPlace),
	}
}

func fixtureRankings() []raw.Record {
	return []raw.Record{
		{"season": 2024.0, "seasonType": "regular", "week": 2.0, "polls": []any{
			map[string]any{"poll": "AP Top 25", "ranks": []any{
				rank(2, "Texas", "SEC", 1440, 8),
				rank(1, "Georgia", "SEC", 1520, 50),
				rank(3, "Miami", "ACC", 1300, 1),
			}},
			map[string]any{"poll": "Coaches Poll", "ranks": []any{
				rank(1, "Georgia", "SEC", 1600, 55),
				rank(2, "Texas", "SEC", 1500, 6),
			}},
			map[string]any{"poll": "FCS Coaches Poll", "ranks": []any{
				rank(1, "Samford", "SoCon", 700, 20),
			}},
		}},
		{"season": 2024.0, "seasonType": "regular", "week": 1.0, "polls": []any{
			map[string]any{"poll": "AP Top 25", "ranks": []any{
				rank(1, "Georgia", "SEC", 1550, 60),
				rank(2, "Ohio State", "Big Ten", 1450, 2),
			}},
		}},
		{"season": 2024.0, "seasonType": "regular", "week": 3.0, "polls": []any{
			map[string]any{"poll": "AP Top 25", "ranks": []any{
				rank(1, "Texas", "SEC", 1530, 40),
				rank(2, "Alabama", "SEC", 1480, 18),
				rank(3, "Ohio State", "Big Ten", 1400, 4),
			}},
			map[string]any{"poll": "Coaches Poll", "ranks": []any{
				rank(2, "Alabama", "SEC", 1520, 10),
				rank(1, "Texas", "SEC", 1580, 45),
			}},
		}},
	}
}
