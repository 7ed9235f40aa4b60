package testutil

import (
	"boxscore-service/internal/domain"
)

// SampleEntry builds a log entry with the given id and delta.
func SampleEntry(id, label string, delta domain.StatDelta) domain.LogEntry {
	return domain.LogEntry{
		ID:         id,
		RecordedAt: "2024-03-01T19:05:00Z",
		Label:      label,
		Delta:      delta,
	}
}

// SampleState builds a game state whose stats match its log by construction.
func SampleState() domain.GameState {
	log := []domain.LogEntry{
		SampleEntry("entry-2", "Rebound", domain.StatDelta{domain.DefensiveRebounds: 1}),
		SampleEntry("entry-1", "2PT Made", domain.StatDelta{domain.FieldGoalsMade: 1, domain.FieldGoalsAttempted: 1}),
	}
	return domain.GameState{
		Player:   "Jane Doe",
		Opponent: "Lakers",
		Date:     "2024-03-01",
		Stats:    domain.SumDeltas(log),
		Log:      log,
	}
}
