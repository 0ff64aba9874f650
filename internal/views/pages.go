package views

import (
	"time"

	"github.com/a-h/templ"

	"github.com/preston-bernstein/cfb-dashboard/internal/app/dashboard"
	"github.com/preston-bernstein/cfb-dashboard/internal/domain/rankings"
	"github.com/preston-bernstein/cfb-dashboard/internal/domain/teams"
	"github.com/preston-bernstein/cfb-dashboard/internal/timeutil"
)

// SchedulePage renders the game list for one week or a whole season.
func SchedulePage(view dashboard.ScheduleView) templ.Component {
	p := view.Params
	body := component(func(h *htmlWriter) {
		h.raw(`<h2>Schedule</h2>`)
		h.component(seasonForm("/schedule", p.Year, p.Week, p.SeasonType, true, nil))
		if len(view.Games) == 0 {
			h.raw(`<p class="empty">No games found.</p>`)
			return
		}
		h.raw(`<table class="schedule"><thead><tr><th>Week</th><th>Away</th><th></th><th>Home</th><th></th><th>Kickoff</th></tr></thead><tbody>`)
		for _, g := range view.Games {
			h.raw(`<tr`)
			if !g.Completed {
				h.attr("class", "pending")
			}
			h.raw(`><td>`)
			h.int(g.Week)
			h.raw(`</td>`)
			teamCell(h, g.Away)
			h.raw(`<td class="score">`)
			h.text(formatPoints(g.AwayPoints))
			h.raw(`</td>`)
			teamCell(h, g.Home)
			h.raw(`<td class="score">`)
			h.text(formatPoints(g.HomePoints))
			h.raw(`</td><td class="muted">`)
			h.text(timeutil.FormatKickoff(g.StartDate, time.UTC))
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table>`)
	})
	return Layout("Schedule", dashboard.PageSchedule, body)
}

func teamCell(h *htmlWriter, t dashboard.TeamRef) {
	h.raw(`<td class="team">`)
	logoImg(h, t.Logo, t.Name)
	h.text(t.Name)
	if !t.FBS {
		h.raw(` <span class="tag">non-FBS</span>`)
	}
	h.raw(`</td>`)
}

// StandingsPage renders records and ratings.
func StandingsPage(view dashboard.StandingsView) templ.Component {
	p := view.Params
	body := component(func(h *htmlWriter) {
		h.raw(`<h2>Standings</h2>`)
		h.component(seasonForm("/standings", p.Year, 0, p.SeasonType, false, nil))
		if len(view.Rows) == 0 {
			h.raw(`<p class="empty">No completed games yet.</p>`)
			return
		}
		h.raw(`<table class="standings"><thead><tr><th>#</th><th>Team</th><th>Conference</th><th>W</th><th>L</th><th>Rating</th></tr></thead><tbody>`)
		for i, row := range view.Rows {
			h.raw(`<tr><td>`)
			h.int(i + 1)
			h.raw(`</td><td class="team">`)
			logoImg(h, row.Logo, row.Team)
			h.text(row.Team)
			h.raw(`</td><td>`)
			h.text(row.Conference)
			h.raw(`</td><td>`)
			h.int(row.Wins)
			h.raw(`</td><td>`)
			h.int(row.Losses)
			h.raw(`</td><td>`)
			h.text(formatFloat(row.Rating, 3))
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table>`)
	})
	return Layout("Standings", dashboard.PageStandings, body)
}

// StatsPage renders per-game averages with one column per stat.
func StatsPage(view dashboard.StatsView) templ.Component {
	p := view.Params
	body := component(func(h *htmlWriter) {
		h.raw(`<h2>Per-game averages</h2>`)
		h.component(seasonForm("/stats", p.Year, 0, p.SeasonType, false, nil))
		if len(view.Rows) == 0 {
			h.raw(`<p class="empty">No stats available.</p>`)
			return
		}
		h.raw(`<div class="scroll"><table class="stats"><thead><tr><th>Team</th><th>G</th>`)
		for _, name := range view.StatNames {
			h.raw(`<th>`)
			h.text(name)
			h.raw(`</th>`)
		}
		h.raw(`</tr></thead><tbody>`)
		for _, row := range view.Rows {
			h.raw(`<tr><td class="team">`)
			logoImg(h, row.Logo, row.Team)
			h.text(row.Team)
			h.raw(`</td><td>`)
			h.int(row.Games)
			h.raw(`</td>`)
			for _, name := range view.StatNames {
				h.raw(`<td>`)
				if v, ok := row.Averages[name]; ok {
					h.text(formatFloat(v, 1))
				}
				h.raw(`</td>`)
			}
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table></div>`)
	})
	return Layout("Stats", dashboard.PageStats, body)
}

// RankingsPage renders the AP and Coaches polls for each collected week.
func RankingsPage(view dashboard.RankingsView) templ.Component {
	p := view.Params
	modeSelect := func(h *htmlWriter) {
		h.raw(`<label>Show <select name="mode">`)
		for _, m := range []rankings.Mode{rankings.ModeLatest, rankings.ModeAll} {
			h.raw(`<option`)
			h.attr("value", string(m))
			if m == view.Mode {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(string(m))
			h.raw(`</option>`)
		}
		h.raw(`</select></label>`)
	}
	body := component(func(h *htmlWriter) {
		h.raw(`<h2>Rankings</h2>`)
		h.component(seasonForm("/rankings", p.Year, 0, p.SeasonType, false, modeSelect))
		if len(view.Weeks) == 0 {
			h.raw(`<p class="empty">No polls released yet.</p>`)
			return
		}
		for i := len(view.Weeks) - 1; i >= 0; i-- {
			week := view.Weeks[i]
			h.raw(`<section class="week"><h3>Week `)
			h.int(week.Week)
			h.raw(`</h3><div class="polls">`)
			pollTable(h, rankings.PollAP, week.AP, view.Logos)
			pollTable(h, rankings.PollCoaches, week.Coaches, view.Logos)
			h.raw(`</div></section>`)
		}
	})
	return Layout("Rankings", dashboard.PageRankings, body)
}

func pollTable(h *htmlWriter, name string, entries []rankings.RankEntry, logos teams.LogoMap) {
	h.raw(`<div class="poll"><h4>`)
	h.text(name)
	h.raw(`</h4>`)
	if len(entries) == 0 {
		h.raw(`<p class="empty">Not released.</p></div>`)
		return
	}
	h.raw(`<table><thead><tr><th>#</th><th>Team</th><th>Pts</th><th>1st</th></tr></thead><tbody>`)
	for _, e := range entries {
		h.raw(`<tr><td>`)
		h.int(e.Rank)
		h.raw(`</td><td class="team">`)
		logoImg(h, logos[e.Team], e.Team)
		h.text(e.Team)
		if e.Conference != "" {
			h.raw(` <span class="muted">`)
			h.text(e.Conference)
			h.raw(`</span>`)
		}
		h.raw(`</td><td>`)
		h.int(e.Points)
		h.raw(`</td><td>`)
		if e.FirstPlaceVotes > 0 {
			h.int(e.FirstPlaceVotes)
		}
		h.raw(`</td></tr>`)
	}
	h.raw(`</tbody></table></div>`)
}
