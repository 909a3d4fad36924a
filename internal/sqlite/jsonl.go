// JSONL read/write helpers with atomic persistence.
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const posesFile = "poses.jsonl"

// maxLineBytes caps a single JSONL line. A pose line embeds the full
// document, which can grow large with prop-heavy scenes, so the default
// bufio.Scanner limit of 64KB is too tight.
const maxLineBytes = 16 << 20

func posesPath(dataDir string) string {
	return filepath.Join(dataDir, posesFile)
}

// ensureJSONLFile creates an empty JSONL file if none exists, so a fresh
// data directory attaches cleanly.
func ensureJSONLFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	return os.WriteFile(path, nil, 0o644)
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line as
// a json.RawMessage. Malformed lines are skipped; a corrupt line costs one
// pose, never the whole gallery.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	fail := func(step string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", step, err)
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fail("writing record", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail("writing newline", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail("flushing buffer", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// persistPoses writes every pose row to poses.jsonl atomically. Called with
// the backend lock held, after every mutation.
func (b *Backend) persistPoses() error {
	rows, err := b.db.Query(
		`SELECT pose_id, name, document, created_at, updated_at FROM poses ORDER BY name`)
	if err != nil {
		return fmt.Errorf("querying poses for persist: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec poseJSON
		var docText string
		if err := rows.Scan(&rec.PoseID, &rec.Name, &docText, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return fmt.Errorf("scanning pose for persist: %w", err)
		}
		rec.Document = json.RawMessage(docText)
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding pose record: %w", err)
		}
		records = append(records, line)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating poses for persist: %w", err)
	}

	return writeJSONL(posesPath(b.config.DataDir), records)
}
