package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"boxscore-service/internal/domain"
	"boxscore-service/internal/metrics"
	"boxscore-service/internal/testutil"
)

type scriptedGenerator struct {
	calls   int
	results []error
	text    string
}

func (g *scriptedGenerator) Summarize(ctx context.Context, state domain.GameState) (string, error) {
	idx := g.calls
	g.calls++
	if idx >= len(g.results) {
		idx = len(g.results) - 1
	}
	if err := g.results[idx]; err != nil {
		return "", err
	}
	return g.text, nil
}

func TestRetryingGeneratorSucceedsAfterFailures(t *testing.T) {
	inner := &scriptedGenerator{
		results: []error{errors.New("boom"), errors.New("boom"), nil},
		text:    "a solid outing",
	}
	recorder := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()
	gen := NewRetryingGenerator(inner, logger, recorder, "test", 3, time.Millisecond)

	text, err := gen.Summarize(context.Background(), domain.GameState{})
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if text != "a solid outing" {
		t.Fatalf("unexpected text %q", text)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
	if got := recorder.GeneratorErrors("test"); got != 2 {
		t.Fatalf("expected 2 recorded errors, got %d", got)
	}
	if got := recorder.GeneratorCalls("test"); got != 3 {
		t.Fatalf("expected 3 recorded calls, got %d", got)
	}
}

func TestRetryingGeneratorGivesUpAfterMaxAttempts(t *testing.T) {
	wantErr := errors.New("model unavailable")
	inner := &scriptedGenerator{results: []error{wantErr}}
	logger, _ := testutil.NewBufferLogger()
	gen := NewRetryingGenerator(inner, logger, nil, "test", 2, time.Millisecond)

	_, err := gen.Summarize(context.Background(), domain.GameState{})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected underlying error, got %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", inner.calls)
	}
}

func TestRetryingGeneratorHonorsContextCancellation(t *testing.T) {
	inner := &scriptedGenerator{results: []error{errors.New("boom")}}
	logger, _ := testutil.NewBufferLogger()
	gen := NewRetryingGenerator(inner, logger, nil, "test", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Summarize(ctx, domain.GameState{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected a single attempt before cancellation, got %d", inner.calls)
	}
}

func TestRetryingGeneratorRecordsRateLimits(t *testing.T) {
	rl := &RateLimitError{Generator: "test", StatusCode: 429, RetryAfter: time.Millisecond}
	inner := &scriptedGenerator{results: []error{rl, nil}, text: "recap"}
	recorder := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()
	gen := NewRetryingGenerator(inner, logger, recorder, "test", 3, time.Millisecond)

	if _, err := gen.Summarize(context.Background(), domain.GameState{}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got := recorder.RateLimitHits("test"); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", got)
	}
}
