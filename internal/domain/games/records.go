package games

import "github.com/preston-bernstein/cfb-dashboard/internal/domain/teams"

// Record is a team's win/loss tally over completed games.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Played returns the number of completed games.
func (r Record) Played() int {
	return r.Wins + r.Losses
}

// AggregateRecords folds completed games into per-team records keyed by the
// team name as it appears in the schedule. Games missing either score or either
// team name are skipped.
// A tie is counted as an away win; the covered seasons have no ties.
func AggregateRecords(gs []Game) map[string]Record {
	records := make(map[string]Record)
	for _, g := range gs {
		if !g.Completed() || g.HomeTeam == "" || g.AwayTeam == "" {
			continue
		}
		home := records[g.HomeTeam]
		away := records[g.AwayTeam]
		if *g.HomePoints > *g.AwayPoints {
			home.Wins++
			away.Losses++
		} else {
			away.Wins++
			home.Losses++
		}
		records[g.HomeTeam] = home
		records[g.AwayTeam] = away
	}
	return records
}

// Rating is wins over games played, or 0 for a team with no games.
func Rating(r Record) float64 {
	played := r.Played()
	if played == 0 {
		return 0
	}
	return float64(r.Wins) / float64(played)
}

// Ratings computes Rating for every record.
func Ratings(records map[string]Record) map[string]float64 {
	out := make(map[string]float64, len(records))
	for team, rec := range records {
		out[team] = Rating(rec)
	}
	return out
}

// CompletedCounts re-keys games played by normalized team name.
// Names that normalize to the same key are summed.
func CompletedCounts(records map[string]Record) map[teams.NormalizedKey]int {
	out := make(map[teams.NormalizedKey]int, len(records))
	for team, rec := range records {
		out[teams.Normalize(team)] += rec.Played()
	}
	return out
}
