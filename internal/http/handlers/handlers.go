package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"boxscore-service/internal/autosave"
	"boxscore-service/internal/domain"
	"boxscore-service/internal/ledger"
	"boxscore-service/internal/logging"
	"boxscore-service/internal/snapshots"
	"boxscore-service/internal/summary"
	"boxscore-service/internal/timeutil"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the stat ledger.
type Handler struct {
	ledger    *ledger.Service
	generator summary.Generator
	snaps     snapshots.Store
	logger    *slog.Logger
	now       nowFunc
	statusFn  func() autosave.Status

	summaryMu   sync.Mutex
	summaryBusy bool
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *ledger.Service, generator summary.Generator, snaps snapshots.Store, logger *slog.Logger, statusFn func() autosave.Status) *Handler {
	return &Handler{
		ledger:    svc,
		generator: generator,
		snaps:     snaps,
		logger:    logger,
		now:       time.Now,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Game dispatches reads and matchup updates for the current game.
func (h *Handler) Game(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		writeJSON(w, nethttp.StatusOK, h.ledger.State(), h.logger)
	case nethttp.MethodPut:
		h.setMatchup(w, r)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

type matchupRequest struct {
	Player   string `json:"player"`
	Opponent string `json:"opponent"`
	Date     string `json:"date"`
}

func (h *Handler) setMatchup(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req matchupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Date != "" {
		if _, err := timeutil.ParseDate(req.Date); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
	}

	state := h.ledger.SetMatchup(strings.TrimSpace(req.Player), strings.TrimSpace(req.Opponent), req.Date)
	writeJSON(w, nethttp.StatusOK, state, h.logger)
}

type recordRequest struct {
	Label string           `json:"label"`
	Delta domain.StatDelta `json:"delta"`
}

type recordResponse struct {
	Entry domain.LogEntry `json:"entry"`
	Stats domain.StatSet  `json:"stats"`
}

// RecordEvent appends one action to the ledger.
func (h *Handler) RecordEvent(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	for key := range req.Delta {
		if !key.Valid() {
			writeError(w, r, nethttp.StatusBadRequest, "unknown stat key: "+string(key), h.logger)
			return
		}
	}

	entry, err := h.ledger.Record(strings.TrimSpace(req.Label), req.Delta)
	switch {
	case errors.Is(err, ledger.ErrEmptyLabel):
		writeError(w, r, nethttp.StatusBadRequest, "label required", h.logger)
		return
	case errors.Is(err, ledger.ErrEmptyDelta):
		writeError(w, r, nethttp.StatusBadRequest, "delta required", h.logger)
		return
	case err != nil:
		writeError(w, r, nethttp.StatusInternalServerError, "failed to record action", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusCreated, recordResponse{
		Entry: entry,
		Stats: h.ledger.State().Stats,
	}, h.logger)
}

// UndoEvent reverses a previously recorded action by id. Any entry may be
// undone, not just the most recent one; unknown ids leave state unchanged.
func (h *Handler) UndoEvent(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodDelete, h.logger) {
		return
	}

	// Expect path: /game/events/{id}
	idRaw := strings.TrimPrefix(r.URL.Path, "/game/events/")
	id, err := url.PathUnescape(idRaw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid entry id", h.logger)
		return
	}

	if !h.ledger.Undo(id) {
		writeError(w, r, nethttp.StatusNotFound, "entry not found", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, h.ledger.State(), h.logger)
}

// Reset clears the ledger and the persisted state.
func (h *Handler) Reset(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	h.ledger.Reset()
	writeJSON(w, nethttp.StatusOK, h.ledger.State(), h.logger)
}

// SnapshotByDate serves a persisted dated snapshot of the game state.
func (h *Handler) SnapshotByDate(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	date := strings.TrimPrefix(r.URL.Path, "/game/snapshots/")
	if _, err := timeutil.ParseDate(date); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
		return
	}
	if h.snaps == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "snapshot store not configured", h.logger)
		return
	}
	state, err := h.snaps.LoadGame(date)
	if err != nil {
		writeError(w, r, nethttp.StatusNotFound, "snapshot not found", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served game snapshot",
		slog.String("date", date),
		slog.Int(logging.FieldCount, len(state.Log)),
	)
	writeJSON(w, nethttp.StatusOK, state, h.logger)
}
