package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/cfb-dashboard/internal/http/middleware"
	"github.com/preston-bernstein/cfb-dashboard/internal/logging"
	"github.com/preston-bernstein/cfb-dashboard/internal/providers"
	"github.com/preston-bernstein/cfb-dashboard/internal/views"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	body := map[string]string{"error": message}
	if reqID := requestID(r); reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

func writeHTML(w http.ResponseWriter, r *http.Request, status int, component templ.Component, logger *slog.Logger) {
	templ.Handler(component,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logging.Error(loggerFromContext(r, logger), "failed to render page", err)
				http.Error(w, "render failed", http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

func writeHTMLError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeHTML(w, r, status, views.ErrorPage(status, message, requestID(r)), logger)
}

func requestID(r *http.Request) string {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(middleware.HeaderRequestID)
	}
	return reqID
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

// statusFor maps a page build failure to a response status and a client-safe message.
func statusFor(err error) (int, string) {
	var perr *paramError
	switch {
	case errors.As(err, &perr):
		return http.StatusBadRequest, perr.Error()
	case errors.Is(err, providers.ErrProviderUnavailable):
		return http.StatusServiceUnavailable, "data provider unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "request canceled"
	default:
		return http.StatusBadGateway, "upstream data unavailable"
	}
}
