// Package gallery defines the store contract for persisted named poses and
// its standard error types. Backends live under internal/.
package gallery

import (
	"errors"
	"time"

	"github.com/atelier3d/posekit/pkg/pose"
)

// Entry is a named pose held by the gallery.
type Entry struct {
	PoseID    string
	Name      string
	Document  *pose.Document
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store persists named pose documents. Callers attach to a backend, operate
// on entries by name, and detach when done.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the data directory if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error

	// Save upserts a pose under the given name and returns its ID. An
	// existing entry with the same name is overwritten in place.
	Save(name string, doc *pose.Document) (string, error)

	// Get returns the entry with the given name, or ErrNotFound.
	Get(name string) (*Entry, error)

	// List returns all entries ordered by name.
	List() ([]*Entry, error)

	// Delete removes the entry with the given name, or ErrNotFound.
	Delete(name string) error
}

// Store lifecycle and operation errors.
var (
	ErrStoreDetached   = errors.New("gallery store is detached")
	ErrAlreadyAttached = errors.New("gallery store is already attached")
	ErrNotFound        = errors.New("pose not found")
	ErrInvalidName     = errors.New("pose name must not be empty")
	ErrNilDocument     = errors.New("pose document must not be nil")
)
