// Shared helpers for posekit CLI commands.
package cli

import (
	"fmt"

	"github.com/atelier3d/posekit/internal/paths"
	"github.com/atelier3d/posekit/internal/sqlite"
	"github.com/atelier3d/posekit/pkg/gallery"
)

// attachStore resolves the config and data directories, creates a SQLite
// gallery backend, and attaches it. The caller must defer store.Detach().
func attachStore() (*sqlite.Backend, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := gallery.Config{
		Backend: v.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}

	store := sqlite.NewBackend()
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach gallery: %w", err)
	}
	return store, nil
}
