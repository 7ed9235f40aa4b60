package ledger

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"boxscore-service/internal/domain"
	"boxscore-service/internal/logging"
	"boxscore-service/internal/metrics"
	"boxscore-service/internal/store"
)

// Ledger op names used for metrics.
const (
	OpRecord = "record"
	OpUndo   = "undo"
	OpReset  = "reset"
)

// ErrEmptyLabel rejects record calls without a descriptive label.
var ErrEmptyLabel = errors.New("ledger: label required")

// ErrEmptyDelta rejects record calls that affect no counters.
var ErrEmptyDelta = errors.New("ledger: delta required")

// Service owns the current game state: the aggregate counter line and the
// ordered action log backing it. The log is the authoritative journal; the
// counter line is a derived cache. Every Record adds a delta to both and
// every Undo removes it from both, so the two never drift apart.
//
// Mutations persist synchronously through the Store. Persistence is best
// effort: failures are logged and the in-memory state remains authoritative.
type Service struct {
	mu      sync.Mutex
	store   store.Store
	state   domain.GameState
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
	newID   func() string
}

// New constructs a Service, restoring persisted state when present.
func New(st store.Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	s := &Service{
		store:   st,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
		newID:   uuid.NewString,
	}

	if st != nil {
		state, found, err := st.Load()
		if err != nil {
			logging.Error(logger, "failed to load persisted game state, starting fresh", err)
		} else if found {
			s.state = state
			logging.Info(logger, "restored persisted game state",
				slog.String("player", state.Player),
				slog.Int(logging.FieldCount, len(state.Log)),
			)
		}
	}
	return s
}

// State returns a copy of the current game state.
func (s *Service) State() domain.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// SetMatchup updates the game header fields without touching the ledger.
func (s *Service) SetMatchup(player, opponent, date string) domain.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Player = player
	s.state.Opponent = opponent
	s.state.Date = date
	s.persist()
	return s.state.Clone()
}

// Record applies the delta to the counter line and prepends a new log entry
// with a fresh id and timestamp. Delta signs and magnitudes are not policed;
// correcting mistakes is what Undo is for.
func (s *Service) Record(label string, delta domain.StatDelta) (domain.LogEntry, error) {
	if label == "" {
		return domain.LogEntry{}, ErrEmptyLabel
	}
	if len(delta) == 0 {
		return domain.LogEntry{}, ErrEmptyDelta
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.LogEntry{
		ID:         s.newID(),
		RecordedAt: s.now().UTC().Format(time.RFC3339),
		Label:      label,
		Delta:      delta.Clone(),
	}

	s.state.Stats.Add(entry.Delta)
	s.state.Log = append([]domain.LogEntry{entry}, s.state.Log...)

	s.metrics.RecordLedgerOp(OpRecord)
	logging.Info(s.logger, "recorded action",
		slog.String(logging.FieldEntryID, entry.ID),
		slog.String(logging.FieldLabel, entry.Label),
	)
	s.persist()
	return entry, nil
}

// Undo reverses the entry with the given id, wherever it sits in the log.
// Deltas are commutative, so removing any subset keeps the counter line
// equal to the sum of the remaining entries. Unknown ids are a no-op.
func (s *Service) Undo(entryID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, e := range s.state.Log {
		if e.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	entry := s.state.Log[idx]
	s.state.Stats.Subtract(entry.Delta)
	s.state.Log = append(s.state.Log[:idx], s.state.Log[idx+1:]...)

	s.metrics.RecordLedgerOp(OpUndo)
	logging.Info(s.logger, "undid action",
		slog.String(logging.FieldEntryID, entry.ID),
		slog.String(logging.FieldLabel, entry.Label),
	)
	s.persist()
	return true
}

// Reset zeroes the counter line, empties the log, and clears persisted
// storage. The matchup header is cleared too.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = domain.GameState{}
	s.metrics.RecordLedgerOp(OpReset)
	logging.Info(s.logger, "reset game state")

	if s.store == nil {
		return
	}
	if err := s.store.Clear(); err != nil {
		logging.Error(s.logger, "failed to clear persisted game state", err)
	}
}

// persist writes the current state through the store. Callers hold s.mu.
func (s *Service) persist() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.state); err != nil {
		logging.Error(s.logger, "failed to persist game state", err)
	}
}
