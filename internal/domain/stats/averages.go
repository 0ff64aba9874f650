package stats

import (
	"github.com/preston-bernstein/cfb-dashboard/internal/domain/raw"
	"github.com/preston-bernstein/cfb-dashboard/internal/domain/teams"
)

// StatRow maps a stat name to its per-game average.
type StatRow map[string]float64

// TeamStatLine holds one team's cumulative season stats. Values stay raw until averaged.
type TeamStatLine struct {
	Team  string
	Stats map[string]any
	// order preserves first-seen stat names for display.
	order []string
}

// Names returns the stat names in first-seen order.
func (l TeamStatLine) Names() []string {
	if len(l.order) > 0 {
		return append([]string(nil), l.order...)
	}
	names := make([]string, 0, len(l.Stats))
	for name := range l.Stats {
		names = append(names, name)
	}
	return names
}

var (
	teamField      = raw.FirstOf(raw.StringAt("team"), raw.StringAt("school"))
	statNameField  = raw.FirstOf(raw.StringAt("stat_name"), raw.StringAt("statName"))
	statValueField = func(r raw.Record) (any, bool) {
		for _, key := range []string{"stat_value", "statValue"} {
			if r.Present(key) {
				return r[key], true
			}
		}
		return nil, false
	}
)

// GroupSeasonStats folds flat {team, statName, statValue} rows into one line per team,
// in first-seen team order. Rows without a team or stat name are dropped.
func GroupSeasonStats(rows []raw.Record) []TeamStatLine {
	index := make(map[string]int)
	lines := make([]TeamStatLine, 0)
	for _, row := range rows {
		team := raw.String(row, teamField)
		name := raw.String(row, statNameField)
		if team == "" || name == "" {
			continue
		}
		value, _ := statValueField(row)

		i, ok := index[team]
		if !ok {
			i = len(lines)
			index[team] = i
			lines = append(lines, TeamStatLine{Team: team, Stats: make(map[string]any)})
		}
		if _, seen := lines[i].Stats[name]; !seen {
			lines[i].order = append(lines[i].order, name)
		}
		lines[i].Stats[name] = value
	}
	return lines
}

// AverageStats divides each cumulative stat by the team's completed game count
// (floored at 1) for teams in the fbs set. Non-numeric stats are skipped.
func AverageStats(lines []TeamStatLine, completed map[teams.NormalizedKey]int, fbs map[teams.NormalizedKey]struct{}) map[string]StatRow {
	out := make(map[string]StatRow, len(lines))
	for _, line := range lines {
		key := teams.Normalize(line.Team)
		if _, ok := fbs[key]; !ok {
			continue
		}

		divisor := completed[key]
		if divisor < 1 {
			divisor = 1
		}

		row, ok := out[line.Team]
		if !ok {
			row = make(StatRow, len(line.Stats))
			out[line.Team] = row
		}
		for name, value := range line.Stats {
			f, ok := raw.ToFloat(value)
			if !ok {
				continue
			}
			row[name] = f / float64(divisor)
		}
	}
	return out
}
