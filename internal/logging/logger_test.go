package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewLoggerAttachesServiceFields(t *testing.T) {
	logger := NewLogger(Config{Level: "info", Format: "json", Service: "svc", Version: "1.2.3"})
	if logger == nil {
		t.Fatalf("expected a logger")
	}
}

func TestWithCommon(t *testing.T) {
	attrs := WithCommon(nil, "svc", "v1")
	if len(attrs) != 2 {
		t.Fatalf("expected service and version attrs, got %d", len(attrs))
	}
	attrs = WithCommon(nil, "", "")
	if len(attrs) != 0 {
		t.Fatalf("expected no attrs, got %d", len(attrs))
	}
}

func TestNilSafeHelpers(t *testing.T) {
	// Must not panic on a nil logger.
	Info(nil, "msg")
	Warn(nil, "msg")
	Error(nil, "msg", errors.New("boom"))

	logger, buf := bufferLogger()
	Error(logger, "operation failed", errors.New("boom"))
	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("operation failed")) {
		t.Fatalf("expected message in output, got %q", out)
	}
	if !bytes.Contains([]byte(out), []byte("error=boom")) {
		t.Fatalf("expected error attribute, got %q", out)
	}
}

func TestContextLogger(t *testing.T) {
	logger, _ := bufferLogger()
	ctx := WithLogger(context.Background(), logger)

	if got := FromContext(ctx, nil); got != logger {
		t.Fatalf("expected the stored logger")
	}

	fallback, _ := bufferLogger()
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback logger")
	}
	if got := FromContext(nil, fallback); got != fallback {
		t.Fatalf("expected fallback for nil context")
	}
}
