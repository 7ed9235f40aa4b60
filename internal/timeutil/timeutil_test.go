package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.March || got.Day() != 1 {
		t.Fatalf("unexpected parsed date %v", got)
	}
}

func TestParseDateRejectsBadFormat(t *testing.T) {
	if _, err := ParseDate("03/01/2024"); err == nil {
		t.Fatalf("expected error for non-canonical format")
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 1, 15, 4, 5, 0, time.UTC)
	if got := FormatDate(ts); got != "2024-03-01" {
		t.Fatalf("expected 2024-03-01, got %s", got)
	}
}
