package metrics

import (
	"sync"
	"time"
)

type generatorStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about summary-generator
// calls and ledger activity. It is intentionally simple so it can be swapped
// for a real backend later.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*generatorStats
	ledgerOps map[string]int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:     make(map[string]*generatorStats),
		ledgerOps: make(map[string]int),
		otel:      otel,
	}
}

// RecordGeneratorAttempt increments counters for a generator call and stores the last observed latency.
func (r *Recorder) RecordGeneratorAttempt(generator string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(generator)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordGeneratorAttempt(generator, duration, err)
	}
}

// RecordRateLimit tracks that a generator response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(generator string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(generator)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	if r.otel != nil {
		r.otel.recordRateLimit(generator, retryAfter)
	}
}

// RecordLedgerOp counts a ledger mutation ("record", "undo", "reset").
func (r *Recorder) RecordLedgerOp(op string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ledgerOps[op]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordLedgerOp(op)
	}
}

// LedgerOps returns the count recorded for a ledger operation.
func (r *Recorder) LedgerOps(op string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledgerOps[op]
}

// GeneratorCalls returns the total attempts recorded for a generator.
func (r *Recorder) GeneratorCalls(generator string) int {
	return r.Snapshot(generator).Calls
}

// GeneratorErrors returns the total failed attempts recorded for a generator.
func (r *Recorder) GeneratorErrors(generator string) int {
	return r.Snapshot(generator).Errors
}

// RateLimitHits returns the number of rate limit events seen for a generator.
func (r *Recorder) RateLimitHits(generator string) int {
	return r.Snapshot(generator).RateLimitHits
}

// LastCallLatency returns the last recorded latency for a generator call.
func (r *Recorder) LastCallLatency(generator string) time.Duration {
	return r.Snapshot(generator).LastCallLatency
}

// Snapshot is a copy of the current stats for one generator.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(generator string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(generator)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordAutosaveCycle tracks autosave cycles and errors.
func (r *Recorder) RecordAutosaveCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordAutosave(duration, err)
}

func (r *Recorder) ensureStats(generator string) *generatorStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[generator]
	if !ok {
		stats = &generatorStats{}
		r.stats[generator] = stats
	}
	return stats
}

func (r *Recorder) snapshot(generator string) generatorStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[generator]; ok && stats != nil {
		return *stats
	}
	return generatorStats{}
}
