package snapshots

import (
	"os"
	"path/filepath"
	"testing"

	"boxscore-service/internal/testutil"
)

func TestFSStoreLoadGame(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)
	if err := w.WriteGameSnapshot("2024-03-01", testutil.SampleState()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	state, err := NewFSStore(dir).LoadGame("2024-03-01")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if state.Player != "Jane Doe" || state.Stats.FGM != 1 {
		t.Fatalf("unexpected state %+v", state)
	}
}

func TestFSStoreLoadGameMissing(t *testing.T) {
	s := NewFSStore(t.TempDir())
	if _, err := s.LoadGame("2024-03-01"); err == nil {
		t.Fatalf("expected error for missing snapshot")
	}
}

func TestFSStoreLoadGameRequiresDate(t *testing.T) {
	s := NewFSStore(t.TempDir())
	if _, err := s.LoadGame(""); err == nil {
		t.Fatalf("expected error for missing date")
	}
}

func TestFSStoreLoadGameCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := GameSnapshotPath(dir, "2024-03-01")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	if _, err := NewFSStore(dir).LoadGame("2024-03-01"); err == nil {
		t.Fatalf("expected error for corrupt snapshot")
	}
}
