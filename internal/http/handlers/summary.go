package handlers

import (
	"log/slog"
	nethttp "net/http"

	"boxscore-service/internal/logging"
)

type summaryResponse struct {
	Summary string `json:"summary"`
}

// Summary asks the configured generator for a natural-language recap of the
// current game. Only one request may be in flight at a time; concurrent
// requests are rejected with a conflict. Generator errors are returned
// verbatim in the error body.
func (h *Handler) Summary(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	if h.generator == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "summary generator not configured", h.logger)
		return
	}

	if !h.acquireSummary() {
		writeError(w, r, nethttp.StatusConflict, "summary generation already in progress", h.logger)
		return
	}
	defer h.releaseSummary()

	state := h.ledger.State()
	logger := loggerFromContext(r, h.logger)

	text, err := h.generator.Summarize(r.Context(), state)
	if err != nil {
		logging.Error(logger, "summary generation failed", err)
		writeError(w, r, nethttp.StatusBadGateway, err.Error(), h.logger)
		return
	}

	logging.Info(logger, "generated game summary", slog.Int(logging.FieldCount, len(state.Log)))
	writeJSON(w, nethttp.StatusOK, summaryResponse{Summary: text}, h.logger)
}

func (h *Handler) acquireSummary() bool {
	h.summaryMu.Lock()
	defer h.summaryMu.Unlock()
	if h.summaryBusy {
		return false
	}
	h.summaryBusy = true
	return true
}

func (h *Handler) releaseSummary() {
	h.summaryMu.Lock()
	h.summaryBusy = false
	h.summaryMu.Unlock()
}
