package config

import "path/filepath"

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Backend string // "badger" or "memory"
	DataDir string
}

// BadgerPath returns the directory holding the embedded database.
func (s StorageConfig) BadgerPath() string {
	return filepath.Join(s.DataDir, "ledger")
}

// SnapshotPath returns the directory holding dated game snapshots.
func (s StorageConfig) SnapshotPath() string {
	return filepath.Join(s.DataDir, "snapshots")
}

func loadStorage() StorageConfig {
	return StorageConfig{
		Backend: envOrDefault(envStorage, defaultStorage),
		DataDir: envOrDefault(envDataDir, defaultDataDir),
	}
}
