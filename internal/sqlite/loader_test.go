package sqlite

import (
	"os"
	"path/filepath"
	"testing"
)

// writePosesFixture drops a poses.jsonl into dir before Attach runs.
func writePosesFixture(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, posesFile), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestLoadPosesSkipsDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	writePosesFixture(t, dir, `{"pose_id":"a","name":"standing","document":{"version":1},"created_at":"2026-08-26T10:00:00Z","updated_at":"2026-08-26T10:00:00Z"}
{"pose_id":"b","name":"standing","document":{"version":1},"created_at":"2026-08-26T11:00:00Z","updated_at":"2026-08-26T11:00:00Z"}
{"pose_id":"c","name":"waving","document":{"version":1},"created_at":"2026-08-26T12:00:00Z","updated_at":"2026-08-26T12:00:00Z"}
`)

	b := NewBackend()
	if err := b.Attach(testConfig(dir)); err != nil {
		t.Fatalf("Attach failed on duplicate names: %v", err)
	}
	t.Cleanup(func() { b.Detach() })

	entries, err := b.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 poses after duplicate skipped, got %d", len(entries))
	}

	// First record for a name wins.
	entry, err := b.Get("standing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if entry.PoseID != "a" {
		t.Errorf("expected first record to win, got pose_id %q", entry.PoseID)
	}
}

func TestLoadPosesSkipsIncompleteRecords(t *testing.T) {
	dir := t.TempDir()
	writePosesFixture(t, dir, `{"pose_id":"","name":"standing","document":{"version":1},"created_at":"2026-08-26T10:00:00Z","updated_at":"2026-08-26T10:00:00Z"}
{"pose_id":"b","name":"","document":{"version":1},"created_at":"2026-08-26T10:00:00Z","updated_at":"2026-08-26T10:00:00Z"}
{"pose_id":"c","name":"waving","created_at":"2026-08-26T10:00:00Z","updated_at":"2026-08-26T10:00:00Z"}
{"pose_id":"d","name":"sitting","document":{"version":1},"created_at":"2026-08-26T10:00:00Z","updated_at":"2026-08-26T10:00:00Z"}
`)

	b := NewBackend()
	if err := b.Attach(testConfig(dir)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	t.Cleanup(func() { b.Detach() })

	entries, err := b.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 pose, got %d", len(entries))
	}
	if entries[0].Name != "sitting" {
		t.Errorf("expected surviving pose %q, got %q", "sitting", entries[0].Name)
	}
}
