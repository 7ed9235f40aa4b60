package summary

import (
	"fmt"
	"strings"

	"boxscore-service/internal/domain"
)

// BuildPrompt renders the game state as the user prompt sent to the
// text-generation API: matchup header, the aggregate line, then the action
// log oldest-first.
func BuildPrompt(state domain.GameState) string {
	var b strings.Builder

	player := state.Player
	if player == "" {
		player = "the player"
	}
	fmt.Fprintf(&b, "Write a short game recap for %s", player)
	if state.Opponent != "" {
		fmt.Fprintf(&b, " vs %s", state.Opponent)
	}
	if state.Date != "" {
		fmt.Fprintf(&b, " on %s", state.Date)
	}
	b.WriteString(".\n\nBox score:\n")

	s := state.Stats
	fmt.Fprintf(&b, "PTS %d, FG %d/%d, 3PT %d/%d, FT %d/%d, REB %d (%d off), AST %d, STL %d, BLK %d, TOV %d, PF %d\n",
		s.Points(), s.FGM, s.FGA, s.TPM, s.TPA, s.FTM, s.FTA,
		s.Rebounds(), s.OREB, s.AST, s.STL, s.BLK, s.TOV, s.PF,
	)

	if len(state.Log) > 0 {
		b.WriteString("\nPlay-by-play (oldest first):\n")
		for i := len(state.Log) - 1; i >= 0; i-- {
			e := state.Log[i]
			fmt.Fprintf(&b, "- %s: %s (%s)\n", e.RecordedAt, e.Label, e.Delta.String())
		}
	}

	b.WriteString("\nKeep it to a few sentences, factual, no invented events.")
	return b.String()
}
