package http

import (
	nethttp "net/http"
	"strings"
	"testing"

	"boxscore-service/internal/http/handlers"
	"boxscore-service/internal/ledger"
	"boxscore-service/internal/store"
	"boxscore-service/internal/summary/fixture"
	"boxscore-service/internal/testutil"
)

func newTestRouter(t *testing.T) nethttp.Handler {
	t.Helper()
	svc := ledger.New(store.NewMemoryStore(), nil, nil)
	logger, _ := testutil.NewBufferLogger()
	return NewRouter(handlers.NewHandler(svc, fixture.New(), nil, logger, nil))
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{nethttp.MethodGet, "/health", "", nethttp.StatusOK},
		{nethttp.MethodGet, "/ready", "", nethttp.StatusOK},
		{nethttp.MethodGet, "/game", "", nethttp.StatusOK},
		{nethttp.MethodPost, "/game/events", `{"label":"Assist","delta":{"ast":1}}`, nethttp.StatusCreated},
		{nethttp.MethodDelete, "/game/events/nope", "", nethttp.StatusNotFound},
		{nethttp.MethodGet, "/game/export", "", nethttp.StatusOK},
		{nethttp.MethodPost, "/game/summary", "", nethttp.StatusOK},
		{nethttp.MethodPost, "/game/reset", "", nethttp.StatusOK},
		{nethttp.MethodGet, "/game/snapshots/2024-03-01", "", nethttp.StatusServiceUnavailable},
		{nethttp.MethodGet, "/nope", "", nethttp.StatusNotFound},
	}
	for _, tc := range cases {
		var body *strings.Reader
		if tc.body != "" {
			body = strings.NewReader(tc.body)
		} else {
			body = strings.NewReader("")
		}
		rr := testutil.Serve(router, tc.method, tc.path, body)
		if rr.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d (body %s)", tc.method, tc.path, tc.want, rr.Code, rr.Body.String())
		}
	}
}
