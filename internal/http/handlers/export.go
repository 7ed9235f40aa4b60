package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"boxscore-service/internal/export"
	"boxscore-service/internal/logging"
)

// ExportCSV streams the game as a CSV download. An empty log is rejected
// with no file produced.
func (h *Handler) ExportCSV(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}

	state := h.ledger.State()

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, state); err != nil {
		if errors.Is(err, export.ErrEmptyLog) {
			writeError(w, r, nethttp.StatusConflict, "no recorded actions to export", h.logger)
			return
		}
		logging.Error(h.logger, "csv export failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "export failed", h.logger)
		return
	}

	filename := export.Filename(state)
	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "exported game csv",
		slog.String("filename", filename),
		slog.Int(logging.FieldCount, len(state.Log)),
	)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(nethttp.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Error(h.logger, "failed to write csv response", err)
	}
}
