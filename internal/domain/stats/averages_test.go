package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/cfb-dashboard/internal/domain/raw"
	"github.com/preston-bernstein/cfb-dashboard/internal/domain/teams"
)

func fbsSet(names ...string) map[teams.NormalizedKey]struct{} {
	set := make(map[teams.NormalizedKey]struct{}, len(names))
	for _, n := range names {
		set[teams.Normalize(n)] = struct{}{}
	}
	return set
}

func TestGroupSeasonStatsFoldsRows(t *testing.T) {
	lines := GroupSeasonStats([]raw.Record{
		{"team": "Ohio State", "statName": "totalYards", "statValue": 4800.0},
		{"team": "Georgia", "stat_name": "totalYards", "stat_value": 4500.0},
		{"team": "Ohio State", "statName": "turnovers", "statValue": 12.0},
		{"team": "", "statName": "ignored", "statValue": 1.0},
		{"team": "Georgia", "statValue": 1.0},
	})

	require.Len(t, lines, 2)
	assert.Equal(t, "Ohio State", lines[0].Team)
	assert.Equal(t, []string{"totalYards", "turnovers"}, lines[0].Names())
	assert.Equal(t, "Georgia", lines[1].Team)
	assert.Equal(t, 4500.0, lines[1].Stats["totalYards"])
}

func TestAverageStatsDividesByCompletedGames(t *testing.T) {
	lines := []TeamStatLine{{Team: "Ohio State", Stats: map[string]any{"totalYards": 4800.0, "turnovers": "12"}}}
	completed := map[teams.NormalizedKey]int{"ohiostate": 12}

	got := AverageStats(lines, completed, fbsSet("Ohio State"))

	require.Contains(t, got, "Ohio State")
	assert.InDelta(t, 400.0, got["Ohio State"]["totalYards"], 1e-9)
	assert.InDelta(t, 1.0, got["Ohio State"]["turnovers"], 1e-9)
}

func TestAverageStatsFloorsDivisorAtOne(t *testing.T) {
	lines := []TeamStatLine{{Team: "Georgia", Stats: map[string]any{"sacks": 9.0}}}

	got := AverageStats(lines, map[teams.NormalizedKey]int{}, fbsSet("Georgia"))

	assert.Equal(t, 9.0, got["Georgia"]["sacks"])
}

func TestAverageStatsDropsNonFBSTeams(t *testing.T) {
	lines := []TeamStatLine{
		{Team: "Georgia", Stats: map[string]any{"sacks": 9.0}},
		{Team: "Austin Peay", Stats: map[string]any{"sacks": 30.0}},
	}

	got := AverageStats(lines, nil, fbsSet("GEORGIA"))

	assert.Contains(t, got, "Georgia")
	assert.NotContains(t, got, "Austin Peay")
}

func TestAverageStatsSkipsBadValuesIndividually(t *testing.T) {
	lines := []TeamStatLine{{Team: "Georgia", Stats: map[string]any{"sacks": 10.0, "penalties": nil, "notes": "n/a"}}}

	got := AverageStats(lines, map[teams.NormalizedKey]int{"georgia": 2}, fbsSet("Georgia"))

	require.Contains(t, got, "Georgia")
	assert.Equal(t, StatRow{"sacks": 5.0}, got["Georgia"])
}

func TestAverageStatsHandlesEmptyInput(t *testing.T) {
	assert.Empty(t, AverageStats(nil, nil, nil))
}
