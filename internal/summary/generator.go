package summary

import (
	"context"

	"boxscore-service/internal/domain"
)

// Generator produces a natural-language recap of the game state.
// Implementations receive the full ledger (matchup header, counter line,
// and action log) and return free text. Errors are surfaced verbatim to
// the caller; there is no structured error taxonomy beyond RateLimitError.
type Generator interface {
	Summarize(ctx context.Context, state domain.GameState) (string, error)
}
