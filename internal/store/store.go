package store

import "boxscore-service/internal/domain"

// Store defines the contract for persisting the current game state.
// Load reports found=false when nothing has been persisted yet; malformed
// persisted data is treated the same way so callers fall back to defaults.
type Store interface {
	Load() (state domain.GameState, found bool, err error)
	Save(state domain.GameState) error
	Clear() error
}

// Closer is implemented by stores holding external resources.
type Closer interface {
	Close() error
}
