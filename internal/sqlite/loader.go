// JSONL loading for attach.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// loadPoses reads poses.jsonl and inserts each record into the poses table.
// Records that do not decode to a usable pose record, or that violate a
// table constraint (duplicate name in a hand-edited file), are skipped,
// matching the malformed-line tolerance of readJSONL. A bad record costs
// one pose, never the attach.
func loadPoses(db *sql.DB, dataDir string) error {
	records, err := readJSONL(posesPath(dataDir))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO poses (pose_id, name, document, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, raw := range records {
		var rec poseJSON
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		if rec.PoseID == "" || rec.Name == "" || len(rec.Document) == 0 {
			continue
		}
		if _, err := stmt.Exec(rec.PoseID, rec.Name, string(rec.Document), rec.CreatedAt, rec.UpdatedAt); err != nil {
			// Skip records that violate constraints.
			continue
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}
