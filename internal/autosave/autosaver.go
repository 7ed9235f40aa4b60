package autosave

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"boxscore-service/internal/domain"
	"boxscore-service/internal/logging"
	"boxscore-service/internal/metrics"
	"boxscore-service/internal/timeutil"
)

const defaultInterval = 30 * time.Second

// StateSource exposes the current game state.
type StateSource interface {
	State() domain.GameState
}

// SnapshotWriter persists game snapshots to disk.
type SnapshotWriter interface {
	WriteGameSnapshot(date string, state domain.GameState) error
}

// Autosaver snapshots the current game state on an interval so a crash
// never loses more than one interval of recorded actions beyond what the
// primary store already holds.
type Autosaver struct {
	source   StateSource
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the autosave loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the autosaver has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs an Autosaver with sane defaults.
func New(source StateSource, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Autosaver {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Autosaver{
		source:   source,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins autosaving until the context is cancelled or Stop is called.
func (a *Autosaver) Start(ctx context.Context) {
	a.startMu.Lock()
	if a.started {
		a.startMu.Unlock()
		return
	}
	a.started = true
	a.startMu.Unlock()

	a.ticker = time.NewTicker(a.interval)

	go func() {
		a.logInfo("autosaver started", slog.Int64(logging.FieldDurationMS, a.interval.Milliseconds()))
		// Initial snapshot to verify the target directory is writable.
		a.saveOnce()

		for {
			select {
			case <-ctx.Done():
				a.stopTicker()
				a.logInfo("autosaver stopped")
				return
			case <-a.done:
				a.stopTicker()
				a.logInfo("autosaver stopped")
				return
			case <-a.ticker.C:
				a.saveOnce()
			}
		}
	}()
}

// Stop halts the autosave loop.
func (a *Autosaver) Stop(ctx context.Context) error {
	_ = ctx
	a.stopOnce.Do(func() {
		close(a.done)
		a.stopTicker()
	})
	return nil
}

// Status returns a copy of the current loop status.
func (a *Autosaver) Status() Status {
	a.statusMu.RLock()
	defer a.statusMu.RUnlock()
	return a.status
}

func (a *Autosaver) saveOnce() {
	start := time.Now()
	a.recordAttempt(start)

	state := a.source.State()
	date := state.Date
	if date == "" {
		date = timeutil.FormatDate(a.now().UTC())
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		date = timeutil.FormatDate(a.now().UTC())
	}

	var err error
	if a.writer != nil {
		err = a.writer.WriteGameSnapshot(date, state)
	}
	if a.metrics != nil {
		a.metrics.RecordAutosaveCycle(time.Since(start), err)
	}
	if err != nil {
		a.logError("autosave snapshot write failed", err, slog.String("date", date))
		a.recordFailure(err, start)
		return
	}

	a.recordSuccess(start)
	a.logInfo("autosaved game state",
		slog.String("date", date),
		slog.Int(logging.FieldCount, len(state.Log)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

func (a *Autosaver) stopTicker() {
	if a.ticker != nil {
		a.ticker.Stop()
	}
}

func (a *Autosaver) recordAttempt(at time.Time) {
	a.statusMu.Lock()
	defer a.statusMu.Unlock()
	a.status.LastAttempt = at
}

func (a *Autosaver) recordSuccess(at time.Time) {
	a.statusMu.Lock()
	defer a.statusMu.Unlock()
	a.status.ConsecutiveFailures = 0
	a.status.LastError = ""
	a.status.LastSuccess = at
}

func (a *Autosaver) recordFailure(err error, at time.Time) {
	a.statusMu.Lock()
	defer a.statusMu.Unlock()
	a.status.ConsecutiveFailures++
	if err != nil {
		a.status.LastError = err.Error()
	}
	_ = at
}

func (a *Autosaver) logInfo(msg string, args ...any) {
	logging.Info(a.logger, msg, args...)
}

func (a *Autosaver) logError(msg string, err error, args ...any) {
	logging.Error(a.logger, msg, err, args...)
}
