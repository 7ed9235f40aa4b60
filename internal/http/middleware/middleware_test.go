package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boxscore-service/internal/testutil"
)

func TestLoggingMiddlewarePreservesValidRequestID(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	var ctxID string
	h := LoggingMiddleware(logger, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/game", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := testutil.ServeRequest(h, req)

	if got := rr.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected request id to be echoed, got %q", got)
	}
	if ctxID != "abc-123" {
		t.Fatalf("expected request id in context, got %q", ctxID)
	}
	if !strings.Contains(buf.String(), "request complete") {
		t.Fatalf("expected completion log, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "status_code=204") {
		t.Fatalf("expected logged status, got %q", buf.String())
	}
}

func TestLoggingMiddlewareReplacesInvalidRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	h := LoggingMiddleware(logger, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/game", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces!")
	rr := testutil.ServeRequest(h, req)

	got := rr.Header().Get("X-Request-ID")
	if got == "" || got == "bad id with spaces!" {
		t.Fatalf("expected generated request id, got %q", got)
	}
}

func TestLoggingMiddlewareGeneratesRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	h := LoggingMiddleware(logger, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rr := testutil.Serve(h, http.MethodGet, "/game", nil)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected generated request id")
	}
}

func TestRequestIDFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/game", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/game", "/game"},
		{"/game/events", "/game/events"},
		{"/game/events/abc-123", "/game/events/:id"},
		{"/game/snapshots/2024-03-01", "/game/snapshots/:date"},
		{"/admin/snapshots/refresh", "/admin/snapshots/refresh"},
		{"/unknown", "other"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizePath(tc.in); got != tc.want {
			t.Fatalf("normalizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
