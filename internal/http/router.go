package http

import (
	nethttp "net/http"

	"boxscore-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/game", handler.Game)
	mux.HandleFunc("/game/events", handler.RecordEvent)
	mux.HandleFunc("/game/events/", handler.UndoEvent)
	mux.HandleFunc("/game/reset", handler.Reset)
	mux.HandleFunc("/game/export", handler.ExportCSV)
	mux.HandleFunc("/game/summary", handler.Summary)
	mux.HandleFunc("/game/snapshots/", handler.SnapshotByDate)
	return mux
}
