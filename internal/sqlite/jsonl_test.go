package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadJSONLSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poses.jsonl")
	content := `{"pose_id":"a"}
not json at all

{"pose_id":"b"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	records, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestReadJSONLHandlesLongLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poses.jsonl")

	// A prop-heavy pose document easily exceeds bufio.Scanner's default
	// 64KB token limit.
	notes := strings.Repeat("x", 256*1024)
	line := `{"pose_id":"a","name":"standing","document":{"version":1,"notes":"` + notes + `"}}`
	if err := os.WriteFile(path, []byte(line+"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	records, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed on long line: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if len(records[0]) != len(line) {
		t.Errorf("record truncated: got %d bytes, want %d", len(records[0]), len(line))
	}
}

func TestWriteJSONLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poses.jsonl")

	in := []json.RawMessage{
		json.RawMessage(`{"pose_id":"a","name":"standing"}`),
		json.RawMessage(`{"pose_id":"b","name":"waving"}`),
	}
	if err := writeJSONL(path, in); err != nil {
		t.Fatalf("writeJSONL failed: %v", err)
	}

	out, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d records, got %d", len(in), len(out))
	}
	for i := range in {
		if string(out[i]) != string(in[i]) {
			t.Errorf("record %d = %s, want %s", i, out[i], in[i])
		}
	}

	// No stray temp files left behind.
	matches, _ := filepath.Glob(filepath.Join(dir, ".jsonl-*.tmp"))
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}
}

func TestWriteJSONLOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poses.jsonl")

	if err := writeJSONL(path, []json.RawMessage{json.RawMessage(`{"pose_id":"a"}`)}); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := writeJSONL(path, nil); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	out, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty file after overwrite, got %d records", len(out))
	}
}

func TestEnsureJSONLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poses.jsonl")

	if err := ensureJSONLFile(path); err != nil {
		t.Fatalf("ensureJSONLFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}

	// Existing content is preserved.
	if err := os.WriteFile(path, []byte(`{"pose_id":"a"}`+"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := ensureJSONLFile(path); err != nil {
		t.Fatalf("ensureJSONLFile on existing file failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		t.Errorf("existing content was clobbered: %v", err)
	}
}
