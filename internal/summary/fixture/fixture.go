package fixture

import (
	"context"
	"fmt"

	"boxscore-service/internal/domain"
)

// Generator returns a deterministic summary useful for local runs and tests;
// no network, no key required.
type Generator struct{}

// New creates a fixture generator.
func New() *Generator {
	return &Generator{}
}

// Summarize renders a canned recap from the aggregate line.
func (g *Generator) Summarize(ctx context.Context, state domain.GameState) (string, error) {
	_ = ctx

	player := state.Player
	if player == "" {
		player = "The player"
	}
	line := fmt.Sprintf("%s finished with %d points (%d/%d FG, %d/%d 3PT, %d/%d FT), %d rebounds, %d assists, %d steals and %d blocks",
		player,
		state.Stats.Points(),
		state.Stats.FGM, state.Stats.FGA,
		state.Stats.TPM, state.Stats.TPA,
		state.Stats.FTM, state.Stats.FTA,
		state.Stats.Rebounds(),
		state.Stats.AST, state.Stats.STL, state.Stats.BLK,
	)
	if state.Opponent != "" {
		line += fmt.Sprintf(" against %s", state.Opponent)
	}
	return line + ".", nil
}
