package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/preston-bernstein/cfb-dashboard/internal/app/dashboard"
	"github.com/preston-bernstein/cfb-dashboard/internal/http/handlers"
	"github.com/preston-bernstein/cfb-dashboard/internal/http/middleware"
	"github.com/preston-bernstein/cfb-dashboard/internal/providers/fixture"
)

func newTestRouter(recorder middleware.HTTPRecorder) http.Handler {
	svc := dashboard.NewService(fixture.New(), nil, nil)
	h := handlers.NewHandler(svc, handlers.Defaults{Year: 2024, SeasonType: "regular"}, nil)
	return NewRouter(h, RouterOptions{Recorder: recorder, CORSOrigins: []string{"https://fans.example"}})
}

func serve(router http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(nil)

	cases := map[string]int{
		"/":                    http.StatusFound,
		"/health":              http.StatusOK,
		"/schedule":            http.StatusOK,
		"/standings":           http.StatusOK,
		"/stats":               http.StatusOK,
		"/rankings?mode=all":   http.StatusOK,
		"/api/health":          http.StatusOK,
		"/api/schedule":        http.StatusOK,
		"/api/standings":       http.StatusOK,
		"/api/stats":           http.StatusOK,
		"/api/rankings":        http.StatusOK,
		"/static/app.css":      http.StatusOK,
		"/api/schedule?week=x": http.StatusBadRequest,
	}

	for path, expected := range cases {
		rr := serve(router, http.MethodGet, path, nil)
		assert.Equal(t, expected, rr.Code, "route %s", path)
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(nil)

	rr := serve(router, http.MethodGet, "/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	rr = serve(router, http.MethodGet, "/api/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	router := newTestRouter(nil)

	rr := serve(router, http.MethodPost, "/api/schedule", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouterSetsRequestID(t *testing.T) {
	router := newTestRouter(nil)

	rr := serve(router, http.MethodGet, "/api/health", http.Header{"X-Request-Id": {"req-42"}})
	assert.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))
}

func TestRouterAppliesCORSToAPI(t *testing.T) {
	router := newTestRouter(nil)

	rr := serve(router, http.MethodGet, "/api/standings", http.Header{"Origin": {"https://fans.example"}})
	assert.Equal(t, "https://fans.example", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = serve(router, http.MethodGet, "/api/standings", http.Header{"Origin": {"https://other.example"}})
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))

	rr = serve(router, http.MethodGet, "/standings", http.Header{"Origin": {"https://fans.example"}})
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

type routeRecorder struct {
	paths []string
}

func (r *routeRecorder) RecordHTTPRequest(_, path string, _ int, _ time.Duration) {
	r.paths = append(r.paths, path)
}

func TestRouterRecordsRoutePattern(t *testing.T) {
	recorder := &routeRecorder{}
	router := newTestRouter(recorder)

	serve(router, http.MethodGet, "/api/schedule?week=1", nil)
	serve(router, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, []string{"/api/schedule", "unmatched"}, recorder.paths)
}
