package handlers

import (
	"crypto/subtle"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"boxscore-service/internal/ledger"
	"boxscore-service/internal/logging"
	"boxscore-service/internal/snapshots"
	"boxscore-service/internal/timeutil"
)

// AdminHandler exposes admin-only endpoints (e.g., forced snapshot refresh).
type AdminHandler struct {
	ledger *ledger.Service
	writer *snapshots.Writer
	token  string
	logger *slog.Logger
	now    nowFunc
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(svc *ledger.Service, writer *snapshots.Writer, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		ledger: svc,
		writer: writer,
		token:  token,
		logger: logger,
		now:    time.Now,
	}
}

// RefreshSnapshot writes a snapshot of the current game immediately, without
// waiting for the autosave interval. Guarded by ADMIN_TOKEN env; returns 401
// if missing/invalid.
func (h *AdminHandler) RefreshSnapshot(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", clientIP(r)),
		)
		writeError(w, r, nethttp.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.writer == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "snapshot writer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	state := h.ledger.State()

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = state.Date
	}
	if date == "" {
		date = timeutil.FormatDate(h.now().UTC())
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		logging.Warn(logger, "admin snapshot invalid date", slog.String("date", date))
		writeError(w, r, nethttp.StatusBadRequest, "invalid date format", logger)
		return
	}

	if err := h.writer.WriteGameSnapshot(date, state); err != nil {
		logging.Error(logger, "admin snapshot write failed", err, slog.String("date", date))
		writeError(w, r, nethttp.StatusInternalServerError, "failed to write snapshot", logger)
		return
	}

	logging.Info(logger, "admin snapshot refreshed",
		slog.String("date", date),
		slog.Int(logging.FieldCount, len(state.Log)),
	)
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok", "date": date}, logger)
}

func (h *AdminHandler) authorize(r *nethttp.Request) bool {
	if h.token == "" {
		return false
	}
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	provided := strings.TrimPrefix(header, "Bearer ")
	return subtle.ConstantTimeCompare([]byte(provided), []byte(h.token)) == 1
}
