package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/cfb-dashboard/internal/app/dashboard"
	"github.com/preston-bernstein/cfb-dashboard/internal/domain/rankings"
)

const (
	minYear = 1869
	maxYear = 2100
	maxWeek = 25
)

var seasonTypes = map[string]struct{}{
	"regular":    {},
	"postseason": {},
	"both":       {},
}

// Defaults fill in season parameters a request leaves out.
type Defaults struct {
	Year       int
	SeasonType string
}

type paramError struct {
	param string
	value string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.param, e.value)
}

func parseParams(r *http.Request, d Defaults) (dashboard.Params, error) {
	q := r.URL.Query()
	p := dashboard.Params{Year: d.Year, SeasonType: d.SeasonType}

	if raw := strings.TrimSpace(q.Get("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < minYear || year > maxYear {
			return p, &paramError{param: "year", value: raw}
		}
		p.Year = year
	}

	if raw := strings.TrimSpace(q.Get("week")); raw != "" {
		week, err := strconv.Atoi(raw)
		if err != nil || week < 0 || week > maxWeek {
			return p, &paramError{param: "week", value: raw}
		}
		p.Week = week
	}

	if raw := strings.TrimSpace(q.Get("seasonType")); raw != "" {
		raw = strings.ToLower(raw)
		if _, ok := seasonTypes[raw]; !ok {
			return p, &paramError{param: "seasonType", value: raw}
		}
		p.SeasonType = raw
	}
	return p, nil
}

func parseMode(r *http.Request) (rankings.Mode, error) {
	raw := r.URL.Query().Get("mode")
	mode, ok := rankings.ParseMode(raw)
	if !ok {
		return mode, &paramError{param: "mode", value: raw}
	}
	return mode, nil
}
