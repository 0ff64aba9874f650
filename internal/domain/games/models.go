package games

import "github.com/preston-bernstein/cfb-dashboard/internal/domain/raw"

// Classification tags a game participant's competitive division.
type Classification string

const ClassificationFBS Classification = "fbs"

// Game is a schedule entry read from an upstream game object.
// Points are nil until the game has a usable final score.
type Game struct {
	ID                 int            `json:"id"`
	Week               int            `json:"week"`
	StartDate          string         `json:"startDate"`
	HomeTeam           string         `json:"homeTeam"`
	AwayTeam           string         `json:"awayTeam"`
	HomeClassification Classification `json:"homeClassification"`
	AwayClassification Classification `json:"awayClassification"`
	HomePoints         *float64       `json:"homePoints"`
	AwayPoints         *float64       `json:"awayPoints"`
}

// Upstream game objects arrive in either snake_case or camelCase; snake_case is tried first.
var (
	idField        = raw.FirstOf(raw.NumberAt("id"))
	weekField      = raw.FirstOf(raw.NumberAt("week"))
	startDateField = raw.FirstOf(raw.StringAt("start_date"), raw.StringAt("startDate"))
	homeTeamField  = raw.FirstOf(raw.StringAt("home_team"), raw.StringAt("homeTeam"))
	awayTeamField  = raw.FirstOf(raw.StringAt("away_team"), raw.StringAt("awayTeam"))
	homeClassField = raw.FirstOf(raw.StringAt("home_classification"), raw.StringAt("home_division"), raw.StringAt("homeClassification"))
	awayClassField = raw.FirstOf(raw.StringAt("away_classification"), raw.StringAt("away_division"), raw.StringAt("awayClassification"))
	homePoints     = raw.FirstOf(raw.NumberAt("home_points"), raw.NumberAt("homePoints"))
	awayPoints     = raw.FirstOf(raw.NumberAt("away_points"), raw.NumberAt("awayPoints"))
)

// FromRecord reads a Game from an upstream game object.
func FromRecord(r raw.Record) Game {
	g := Game{
		ID:                 raw.Int(r, idField),
		Week:               raw.Int(r, weekField),
		StartDate:          raw.String(r, startDateField),
		HomeTeam:           raw.String(r, homeTeamField),
		AwayTeam:           raw.String(r, awayTeamField),
		HomeClassification: Classification(raw.String(r, homeClassField)),
		AwayClassification: Classification(raw.String(r, awayClassField)),
	}
	g.HomePoints, _ = homePoints(r)
	g.AwayPoints, _ = awayPoints(r)
	return g
}

// FromRecords maps every upstream game object.
func FromRecords(records []raw.Record) []Game {
	out := make([]Game, 0, len(records))
	for _, r := range records {
		out = append(out, FromRecord(r))
	}
	return out
}

// Completed reports whether both scores are known.
func (g Game) Completed() bool {
	return g.HomePoints != nil && g.AwayPoints != nil
}

// IsFBS reports whether a classification tag names the top division. An empty tag is treated as FBS.
func (c Classification) IsFBS() bool {
	return c == "" || c == ClassificationFBS
}

// TeamNames returns every distinct participant name in first-seen order.
func TeamNames(gs []Game) []string {
	seen := make(map[string]struct{}, len(gs)*2)
	out := make([]string, 0, len(gs)*2)
	for _, g := range gs {
		for _, name := range [2]string{g.HomeTeam, g.AwayTeam} {
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}
