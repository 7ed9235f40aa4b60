package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"boxscore-service/internal/domain"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadGame(date string) (domain.GameState, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadGame reads the snapshot for the given date (YYYY-MM-DD) from disk.
// Files are expected at {basePath}/games/{date}.json with a GameState payload.
func (s *FSStore) LoadGame(date string) (domain.GameState, error) {
	if s == nil {
		return domain.GameState{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return domain.GameState{}, errors.New("snapshot date required")
	}

	f, err := os.Open(GameSnapshotPath(s.basePath, date))
	if err != nil {
		return domain.GameState{}, err
	}
	defer f.Close()

	var state domain.GameState
	if err := json.NewDecoder(f).Decode(&state); err != nil {
		return domain.GameState{}, err
	}
	if state.Date == "" {
		state.Date = date
	}
	return state, nil
}
