package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderGeneratorCounters(t *testing.T) {
	r := NewRecorder()

	r.RecordGeneratorAttempt("openai", 120*time.Millisecond, nil)
	r.RecordGeneratorAttempt("openai", 300*time.Millisecond, errors.New("boom"))

	if got := r.GeneratorCalls("openai"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := r.GeneratorErrors("openai"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := r.LastCallLatency("openai"); got != 300*time.Millisecond {
		t.Fatalf("expected last latency 300ms, got %v", got)
	}
}

func TestRecorderRateLimits(t *testing.T) {
	r := NewRecorder()

	r.RecordRateLimit("openai", 2*time.Second)
	r.RecordRateLimit("openai", 0)

	snap := r.Snapshot("openai")
	if snap.RateLimitHits != 2 {
		t.Fatalf("expected 2 hits, got %d", snap.RateLimitHits)
	}
	if snap.LastRetryAfter != 2*time.Second {
		t.Fatalf("zero retry-after must not overwrite the last value, got %v", snap.LastRetryAfter)
	}
}

func TestRecorderLedgerOps(t *testing.T) {
	r := NewRecorder()

	r.RecordLedgerOp("record")
	r.RecordLedgerOp("record")
	r.RecordLedgerOp("undo")

	if got := r.LedgerOps("record"); got != 2 {
		t.Fatalf("expected 2 record ops, got %d", got)
	}
	if got := r.LedgerOps("undo"); got != 1 {
		t.Fatalf("expected 1 undo op, got %d", got)
	}
	if got := r.LedgerOps("reset"); got != 0 {
		t.Fatalf("expected 0 reset ops, got %d", got)
	}
}

func TestRecorderIsolatesGenerators(t *testing.T) {
	r := NewRecorder()

	r.RecordGeneratorAttempt("openai", time.Millisecond, nil)
	if got := r.GeneratorCalls("fixture"); got != 0 {
		t.Fatalf("expected independent generator counters, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder

	r.RecordGeneratorAttempt("openai", time.Millisecond, nil)
	r.RecordRateLimit("openai", time.Second)
	r.RecordLedgerOp("record")
	r.RecordHTTPRequest("GET", "/game", 200, time.Millisecond)
	r.RecordAutosaveCycle(time.Millisecond, nil)

	if got := r.GeneratorCalls("openai"); got != 0 {
		t.Fatalf("nil recorder must read zero, got %d", got)
	}
	if got := r.LedgerOps("record"); got != 0 {
		t.Fatalf("nil recorder must read zero, got %d", got)
	}
}
