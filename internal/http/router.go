package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/cfb-dashboard/internal/http/handlers"
	"github.com/preston-bernstein/cfb-dashboard/internal/http/middleware"
	"github.com/preston-bernstein/cfb-dashboard/internal/views"
)

const corsMaxAgeSeconds = 300

// RouterOptions carries the cross-cutting pieces the router wraps around handlers.
type RouterOptions struct {
	Logger      *slog.Logger
	Recorder    middleware.HTTPRecorder
	CORSOrigins []string
}

// NewRouter registers the dashboard pages, their JSON API and static assets.
func NewRouter(h *handlers.Handler, opts RouterOptions) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Middleware(opts.Logger, opts.Recorder))
	r.Use(chimiddleware.Recoverer)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/", h.Home)
	r.Get("/health", h.Health)
	r.Get("/schedule", h.SchedulePage)
	r.Get("/standings", h.StandingsPage)
	r.Get("/stats", h.StatsPage)
	r.Get("/rankings", h.RankingsPage)
	r.Handle("/static/*", nethttp.StripPrefix("/static/", nethttp.FileServer(nethttp.FS(views.Static()))))

	r.Route("/api", func(api chi.Router) {
		api.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.HeaderRequestID},
			ExposedHeaders: []string{middleware.HeaderRequestID},
			MaxAge:         corsMaxAgeSeconds,
		}))
		api.NotFound(h.NotFound)
		api.MethodNotAllowed(h.MethodNotAllowed)
		api.Get("/health", h.Health)
		api.Get("/schedule", h.ScheduleJSON)
		api.Get("/standings", h.StandingsJSON)
		api.Get("/stats", h.StatsJSON)
		api.Get("/rankings", h.RankingsJSON)
	})
	return r
}
