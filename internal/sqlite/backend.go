// Package sqlite implements the SQLite gallery store backend. SQLite is the
// query engine; a poses.jsonl file in the data directory is the durable
// source of truth, reloaded on every attach.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/atelier3d/posekit/pkg/gallery"
	"github.com/atelier3d/posekit/pkg/pose"
)

const dbFileName = "gallery.db"

// Backend implements gallery.Store using SQLite for queries and JSONL files
// for persistence.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   gallery.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend: creates the data directory if needed,
// opens a fresh SQLite database, and loads poses.jsonl into it.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config gallery.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return gallery.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The database is rebuilt from JSONL on every attach.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(createPoses); err != nil {
		db.Close()
		return fmt.Errorf("creating schema: %w", err)
	}
	if _, err := db.Exec(idxPosesName); err != nil {
		db.Close()
		return fmt.Errorf("creating indexes: %w", err)
	}

	if err := ensureJSONLFile(posesPath(dataDir)); err != nil {
		db.Close()
		return err
	}
	if err := loadPoses(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("loading poses: %w", err)
	}

	b.db = db
	b.config = config
	b.config.DataDir = dataDir
	b.attached = true
	return nil
}

// Detach closes the database and releases resources. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	b.attached = false
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// Save upserts a pose under the given name and persists the JSONL mirror.
func (b *Backend) Save(name string, doc *pose.Document) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return "", gallery.ErrStoreDetached
	}
	if name == "" {
		return "", gallery.ErrInvalidName
	}
	if doc == nil {
		return "", gallery.ErrNilDocument
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)

	var existingID string
	err = b.db.QueryRow(`SELECT pose_id FROM poses WHERE name = ?`, name).Scan(&existingID)
	switch {
	case err == sql.ErrNoRows:
		existingID = newUUID()
		_, err = b.db.Exec(
			`INSERT INTO poses (pose_id, name, document, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			existingID, name, string(docJSON), now, now,
		)
		if err != nil {
			return "", fmt.Errorf("inserting pose: %w", err)
		}
	case err != nil:
		return "", fmt.Errorf("querying pose: %w", err)
	default:
		_, err = b.db.Exec(
			`UPDATE poses SET document = ?, updated_at = ? WHERE pose_id = ?`,
			string(docJSON), now, existingID,
		)
		if err != nil {
			return "", fmt.Errorf("updating pose: %w", err)
		}
	}

	if err := b.persistPoses(); err != nil {
		return "", err
	}
	return existingID, nil
}

// Get returns the entry with the given name.
func (b *Backend) Get(name string) (*gallery.Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, gallery.ErrStoreDetached
	}
	if name == "" {
		return nil, gallery.ErrInvalidName
	}

	row := b.db.QueryRow(
		`SELECT pose_id, name, document, created_at, updated_at FROM poses WHERE name = ?`, name)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, gallery.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying pose: %w", err)
	}
	return entry, nil
}

// List returns all entries ordered by name.
func (b *Backend) List() ([]*gallery.Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, gallery.ErrStoreDetached
	}

	rows, err := b.db.Query(
		`SELECT pose_id, name, document, created_at, updated_at FROM poses ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying poses: %w", err)
	}
	defer rows.Close()

	var entries []*gallery.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning pose: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating poses: %w", err)
	}
	return entries, nil
}

// Delete removes the entry with the given name and persists the JSONL mirror.
func (b *Backend) Delete(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return gallery.ErrStoreDetached
	}
	if name == "" {
		return gallery.ErrInvalidName
	}

	res, err := b.db.Exec(`DELETE FROM poses WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting pose: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting pose: %w", err)
	}
	if n == 0 {
		return gallery.ErrNotFound
	}
	return b.persistPoses()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*gallery.Entry, error) {
	var rec poseJSON
	var docText string
	if err := s.Scan(&rec.PoseID, &rec.Name, &docText, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	rec.Document = json.RawMessage(docText)
	return rec.entry()
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}
