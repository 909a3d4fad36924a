// Package sqlite provides the public API for the SQLite gallery backend.
// It exposes the factory function while keeping implementation details
// internal.
package sqlite

import (
	"github.com/atelier3d/posekit/internal/sqlite"
	"github.com/atelier3d/posekit/pkg/gallery"
)

// NewStore creates a new SQLite gallery store instance.
// The store is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(gallery.Config{
//	    Backend: gallery.BackendSQLite,
//	    DataDir: ".posekit-db",
//	})
//	defer store.Detach()
func NewStore() gallery.Store {
	return sqlite.NewBackend()
}
