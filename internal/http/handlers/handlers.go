package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/preston-bernstein/cfb-dashboard/internal/app/dashboard"
	"github.com/preston-bernstein/cfb-dashboard/internal/logging"
	"github.com/preston-bernstein/cfb-dashboard/internal/views"
)

const apiPrefix = "/api/"

// Handler wires dashboard pages and their JSON twins to the dashboard service.
type Handler struct {
	svc      *dashboard.Service
	defaults Defaults
	logger   *slog.Logger
}

// NewHandler constructs a Handler. Requests without season parameters use defaults.
func NewHandler(svc *dashboard.Service, defaults Defaults, logger *slog.Logger) *Handler {
	return &Handler{
		svc:      svc,
		defaults: defaults,
		logger:   logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Home sends visitors to the schedule page, keeping any season parameters.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	target := "/schedule"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handler) SchedulePage(w http.ResponseWriter, r *http.Request) {
	renderPage(h, w, r, h.loadSchedule, views.SchedulePage)
}

func (h *Handler) ScheduleJSON(w http.ResponseWriter, r *http.Request) {
	renderJSON(h, w, r, h.loadSchedule)
}

func (h *Handler) StandingsPage(w http.ResponseWriter, r *http.Request) {
	renderPage(h, w, r, h.loadStandings, views.StandingsPage)
}

func (h *Handler) StandingsJSON(w http.ResponseWriter, r *http.Request) {
	renderJSON(h, w, r, h.loadStandings)
}

func (h *Handler) StatsPage(w http.ResponseWriter, r *http.Request) {
	renderPage(h, w, r, h.loadStats, views.StatsPage)
}

func (h *Handler) StatsJSON(w http.ResponseWriter, r *http.Request) {
	renderJSON(h, w, r, h.loadStats)
}

func (h *Handler) RankingsPage(w http.ResponseWriter, r *http.Request) {
	renderPage(h, w, r, h.loadRankings, views.RankingsPage)
}

func (h *Handler) RankingsJSON(w http.ResponseWriter, r *http.Request) {
	renderJSON(h, w, r, h.loadRankings)
}

// NotFound answers JSON under /api and an HTML page elsewhere.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, http.StatusNotFound, "not found")
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	if isAPI(r) {
		writeError(w, r, status, message, h.logger)
		return
	}
	writeHTMLError(w, r, status, message, h.logger)
}

func (h *Handler) loadSchedule(r *http.Request) (dashboard.ScheduleView, error) {
	p, err := parseParams(r, h.defaults)
	if err != nil {
		return dashboard.ScheduleView{}, err
	}
	return h.svc.Schedule(r.Context(), p)
}

func (h *Handler) loadStandings(r *http.Request) (dashboard.StandingsView, error) {
	p, err := parseParams(r, h.defaults)
	if err != nil {
		return dashboard.StandingsView{}, err
	}
	return h.svc.Standings(r.Context(), p)
}

func (h *Handler) loadStats(r *http.Request) (dashboard.StatsView, error) {
	p, err := parseParams(r, h.defaults)
	if err != nil {
		return dashboard.StatsView{}, err
	}
	return h.svc.Stats(r.Context(), p)
}

func (h *Handler) loadRankings(r *http.Request) (dashboard.RankingsView, error) {
	p, err := parseParams(r, h.defaults)
	if err != nil {
		return dashboard.RankingsView{}, err
	}
	mode, err := parseMode(r)
	if err != nil {
		return dashboard.RankingsView{}, err
	}
	return h.svc.Rankings(r.Context(), p, mode)
}

type loader[T any] func(r *http.Request) (T, error)

func renderPage[T any](h *Handler, w http.ResponseWriter, r *http.Request, load loader[T], page func(T) templ.Component) {
	view, err := load(r)
	if err != nil {
		status, message := h.logFailure(r, err)
		writeHTMLError(w, r, status, message, h.logger)
		return
	}
	writeHTML(w, r, http.StatusOK, page(view), h.logger)
}

func renderJSON[T any](h *Handler, w http.ResponseWriter, r *http.Request, load loader[T]) {
	view, err := load(r)
	if err != nil {
		status, message := h.logFailure(r, err)
		writeError(w, r, status, message, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

func (h *Handler) logFailure(r *http.Request, err error) (int, string) {
	status, message := statusFor(err)
	logger := loggerFromContext(r, h.logger)
	if status >= http.StatusInternalServerError {
		logging.Error(logger, "dashboard request failed", err, logging.FieldStatusCode, status)
	} else {
		logging.Warn(logger, "rejected dashboard request", "error", err, logging.FieldStatusCode, status)
	}
	return status, message
}

func isAPI(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, apiPrefix)
}
