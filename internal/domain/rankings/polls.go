package rankings

import (
	"sort"
	"strings"

	"github.com/preston-bernstein/cfb-dashboard/internal/domain/raw"
)

// Tracked poll names, matched exactly.
const (
	PollAP      = "AP Top 25"
	PollCoaches = "Coaches Poll"
)

// Mode selects how many weekly buckets ExtractPolls returns.
type Mode string

const (
	ModeLatest Mode = "latest"
	ModeAll    Mode = "all"
)

// ParseMode maps a query value to a Mode, defaulting to ModeLatest.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAll:
		return ModeAll, true
	case ModeLatest, "":
		return ModeLatest, true
	default:
		return ModeLatest, false
	}
}

// RankEntry is one ranked team within a poll.
type RankEntry struct {
	Rank            int    `json:"rank"`
	Team            string `json:"team"`
	Conference      string `json:"conference,omitempty"`
	Points          int    `json:"points,omitempty"`
	FirstPlaceVotes int    `json:"firstPlaceVotes,omitempty"`
}

// PollBucket holds both tracked polls for one week.
type PollBucket struct {
	Week    int         `json:"week"`
	AP      []RankEntry `json:"ap"`
	Coaches []RankEntry `json:"coaches"`
}

var (
	weekField       = raw.NumberAt("week")
	pollsField      = raw.ListAt("polls")
	pollNameField   = raw.StringAt("poll")
	ranksField      = raw.ListAt("ranks")
	rankField       = raw.NumberAt("rank")
	rankTeamField   = raw.FirstOf(raw.StringAt("school"), raw.StringAt("team"))
	conferenceField = raw.StringAt("conference")
	pointsField     = raw.NumberAt("points")
	firstPlaceField = raw.FirstOf(raw.NumberAt("firstPlaceVotes"), raw.NumberAt("first_place_votes"))
)

// ExtractPolls orders ranking weeks ascending (missing week = 0) and collects the
// tracked polls until the first week carrying neither of them. Polls are assumed
// contiguous once the season's rankings start.
func ExtractPolls(weeks []raw.Record, mode Mode) []PollBucket {
	ordered := make([]raw.Record, len(weeks))
	copy(ordered, weeks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return raw.Int(ordered[i], weekField) < raw.Int(ordered[j], weekField)
	})

	buckets := make([]PollBucket, 0, len(ordered))
	for _, week := range ordered {
		ap, hasAP := findPoll(week, PollAP)
		coaches, hasCoaches := findPoll(week, PollCoaches)
		if !hasAP && !hasCoaches {
			break
		}
		if ap == nil {
			ap = []RankEntry{}
		}
		if coaches == nil {
			coaches = []RankEntry{}
		}
		buckets = append(buckets, PollBucket{
			Week:    raw.Int(week, weekField),
			AP:      ap,
			Coaches: coaches,
		})
	}

	if mode == ModeLatest {
		if len(buckets) == 0 {
			return []PollBucket{}
		}
		return buckets[len(buckets)-1:]
	}
	return buckets
}

func findPoll(week raw.Record, name string) ([]RankEntry, bool) {
	polls, _ := pollsField(week)
	for _, poll := range raw.Records(polls) {
		if raw.String(poll, pollNameField) != name {
			continue
		}
		ranks, _ := ranksField(poll)
		return rankEntries(raw.Records(ranks)), true
	}
	return nil, false
}

func rankEntries(ranks []raw.Record) []RankEntry {
	entries := make([]RankEntry, 0, len(ranks))
	for _, r := range ranks {
		entries = append(entries, RankEntry{
			Rank:            raw.Int(r, rankField),
			Team:            raw.String(r, rankTeamField),
			Conference:      raw.String(r, conferenceField),
			Points:          raw.Int(r, pointsField),
			FirstPlaceVotes: raw.Int(r, firstPlaceField),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})
	return entries
}
