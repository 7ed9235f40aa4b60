package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"boxscore-service/internal/domain"
)

// ErrEmptyLog is returned when there are no recorded actions to export.
var ErrEmptyLog = errors.New("export: no recorded actions")

// WriteCSV renders the game state as CSV: a matchup header block, the
// aggregate counter line, then one row per recorded action (oldest first,
// matching reading order of a play-by-play sheet).
func WriteCSV(w io.Writer, state domain.GameState) error {
	if len(state.Log) == 0 {
		return ErrEmptyLog
	}

	cw := csv.NewWriter(w)

	header := [][]string{
		{"player", state.Player},
		{"opponent", state.Opponent},
		{"date", state.Date},
		{},
	}
	for _, row := range header {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write header: %w", err)
		}
	}

	totals := make([]string, 0, len(domain.StatKeys)+1)
	totals = append(totals, "stat")
	values := make([]string, 0, len(domain.StatKeys)+1)
	values = append(values, "total")
	for _, key := range domain.StatKeys {
		totals = append(totals, strings.ToUpper(string(key)))
		values = append(values, strconv.Itoa(state.Stats.Get(key)))
	}
	totals = append(totals, "PTS")
	values = append(values, strconv.Itoa(state.Stats.Points()))
	if err := cw.Write(totals); err != nil {
		return fmt.Errorf("export: write totals: %w", err)
	}
	if err := cw.Write(values); err != nil {
		return fmt.Errorf("export: write totals: %w", err)
	}
	if err := cw.Write(nil); err != nil {
		return fmt.Errorf("export: write separator: %w", err)
	}

	if err := cw.Write([]string{"time", "action", "delta"}); err != nil {
		return fmt.Errorf("export: write log header: %w", err)
	}
	for i := len(state.Log) - 1; i >= 0; i-- {
		e := state.Log[i]
		if err := cw.Write([]string{e.RecordedAt, e.Label, e.Delta.String()}); err != nil {
			return fmt.Errorf("export: write log row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Filename builds a download filename from the matchup header, replacing
// anything outside [a-zA-Z0-9_-] so it is safe across filesystems.
func Filename(state domain.GameState) string {
	player := sanitizeToken(state.Player, "player")
	date := sanitizeToken(state.Date, "game")
	return fmt.Sprintf("boxscore_%s_%s.csv", player, date)
}

func sanitizeToken(raw, fallback string) string {
	token := unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(raw), "_")
	token = strings.Trim(token, "_")
	if token == "" {
		return fallback
	}
	return token
}
