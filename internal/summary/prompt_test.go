package summary

import (
	"strings"
	"testing"

	"boxscore-service/internal/domain"
	"boxscore-service/internal/testutil"
)

func TestBuildPromptIncludesMatchupAndTotals(t *testing.T) {
	prompt := BuildPrompt(testutil.SampleState())

	if !strings.Contains(prompt, "Jane Doe vs Lakers on 2024-03-01") {
		t.Fatalf("prompt missing matchup header:\n%s", prompt)
	}
	if !strings.Contains(prompt, "PTS 2, FG 1/1") {
		t.Fatalf("prompt missing aggregate line:\n%s", prompt)
	}
}

func TestBuildPromptListsActionsOldestFirst(t *testing.T) {
	prompt := BuildPrompt(testutil.SampleState())

	made := strings.Index(prompt, "2PT Made")
	reb := strings.Index(prompt, "Rebound")
	if made == -1 || reb == -1 {
		t.Fatalf("prompt missing log entries:\n%s", prompt)
	}
	if made > reb {
		t.Fatalf("expected oldest action first:\n%s", prompt)
	}
}

func TestBuildPromptWithoutMatchupDetails(t *testing.T) {
	prompt := BuildPrompt(domain.GameState{})

	if !strings.Contains(prompt, "the player") {
		t.Fatalf("expected placeholder player name:\n%s", prompt)
	}
	if strings.Contains(prompt, "Play-by-play") {
		t.Fatalf("empty log must not produce a play-by-play section:\n%s", prompt)
	}
}
