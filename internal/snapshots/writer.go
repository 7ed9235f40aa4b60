package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"boxscore-service/internal/domain"
)

// Writer persists dated game-state backups and a manifest with pruning.
// Snapshots are a recovery/history layer on top of the primary store: one
// JSON file per game date, written atomically via tmp+rename.
type Writer struct {
	basePath      string
	retentionDays int
}

// NewWriter constructs a writer rooted at basePath. Backups whose files were
// last written more than retentionDays ago are pruned on the next write.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteGameSnapshot writes the game snapshot for the given date (YYYY-MM-DD)
// and prunes old snapshots. Unchanged payloads only refresh the manifest.
func (w *Writer) WriteGameSnapshot(date string, state domain.GameState) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if date == "" {
		return fmt.Errorf("date required")
	}
	if state.Date == "" {
		state.Date = date
	}

	target := GameSnapshotPath(w.basePath, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(date)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(date)
}

func (w *Writer) updateManifest(date string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionDays)
	now := time.Now().UTC()

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}
	pruned, err := w.pruneOldSnapshots(dates)
	if err != nil {
		return err
	}

	m.Games.Dates = pruned
	m.Games.LastRefreshed = now
	m.Retention.GamesDays = w.retentionDays

	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates() ([]string, error) {
	dir := filepath.Join(w.basePath, "games")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var (
		dates []string
		seen  = make(map[string]struct{})
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		base := name[:len(name)-len(".json")]
		if _, ok := seen[base]; ok {
			continue
		}
		seen[base] = struct{}{}
		dates = append(dates, base)
	}
	sort.Strings(dates)
	return dates, nil
}

// pruneOldSnapshots removes backups not written within the retention window.
// Age is judged by file mtime, not by the game date in the filename: a game
// played long ago is still a fresh backup if it was snapshotted just now.
func (w *Writer) pruneOldSnapshots(dates []string) ([]string, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -w.retentionDays)
	var keep []string
	for _, d := range dates {
		path := GameSnapshotPath(w.basePath, d)
		info, err := os.Stat(path)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if info.ModTime().UTC().Before(cutoff) {
			_ = os.Remove(path)
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep, nil
}
