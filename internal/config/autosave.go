package config

import "time"

// AutosaveConfig controls periodic game-state snapshotting.
type AutosaveConfig struct {
	Enabled       bool
	Interval      time.Duration
	RetentionDays int    // retention for pruning dated snapshots
	AdminToken    string // guards the manual refresh endpoint
}

func loadAutosave() AutosaveConfig {
	return AutosaveConfig{
		Enabled:       boolEnvOrDefault(envAutosaveOn, defaultAutosaveOn),
		Interval:      durationEnvOrDefault(envAutosaveInterval, defaultAutosaveInterval),
		RetentionDays: intEnvOrDefault(envSnapshotDays, defaultSnapshotDays),
		AdminToken:    envOrDefault(envAdminToken, ""),
	}
}
