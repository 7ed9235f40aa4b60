package server

import (
	"log/slog"
	"strings"

	"boxscore-service/internal/config"
	"boxscore-service/internal/store"
)

// buildStore selects the persistence backend. A badger open failure falls
// back to memory so the service still comes up; the ledger just won't
// survive restarts.
func buildStore(cfg config.Config, logger *slog.Logger) store.Store {
	switch strings.ToLower(cfg.Storage.Backend) {
	case "memory":
		return store.NewMemoryStore()
	case "badger", "":
		st, err := store.NewBadgerStore(store.BadgerConfig{
			Path:   cfg.Storage.BadgerPath(),
			Logger: logger,
		})
		if err != nil {
			if logger != nil {
				logger.Error("failed to open badger store, falling back to memory", "error", err)
			}
			return store.NewMemoryStore()
		}
		return st
	default:
		if logger != nil {
			logger.Warn("unknown storage backend, using memory", slog.String("backend", cfg.Storage.Backend))
		}
		return store.NewMemoryStore()
	}
}
