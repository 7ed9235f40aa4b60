package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_ENV_KEY", "set")
	if got := envOrDefault("TEST_ENV_KEY", "fallback"); got != "set" {
		t.Fatalf("expected set value, got %q", got)
	}
	if got := envOrDefault("TEST_ENV_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_DURATION", "45s")
	if got := durationEnvOrDefault("TEST_DURATION", time.Minute); got != 45*time.Second {
		t.Fatalf("expected 45s, got %v", got)
	}

	t.Setenv("TEST_DURATION", "garbage")
	if got := durationEnvOrDefault("TEST_DURATION", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for garbage, got %v", got)
	}

	t.Setenv("TEST_DURATION", "-5s")
	if got := durationEnvOrDefault("TEST_DURATION", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for non-positive duration, got %v", got)
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_INT", "7")
	if got := intEnvOrDefault("TEST_INT", 14); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}

	t.Setenv("TEST_INT", "0")
	if got := intEnvOrDefault("TEST_INT", 14); got != 14 {
		t.Fatalf("expected fallback for non-positive int, got %d", got)
	}

	t.Setenv("TEST_INT", "seven")
	if got := intEnvOrDefault("TEST_INT", 14); got != 14 {
		t.Fatalf("expected fallback for garbage, got %d", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"YES", false, true},
		{"0", true, false},
		{"false", true, false},
		{"no", true, false},
		{"", true, true},
		{"maybe", false, false},
	}
	for _, tc := range cases {
		t.Setenv("TEST_BOOL", tc.raw)
		if got := boolEnvOrDefault("TEST_BOOL", tc.def); got != tc.want {
			t.Fatalf("boolEnvOrDefault(%q, %v) = %v, want %v", tc.raw, tc.def, got, tc.want)
		}
	}
}
