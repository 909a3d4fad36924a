package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/atelier3d/posekit/internal/paths"
	"github.com/atelier3d/posekit/internal/sqlite"
	"github.com/atelier3d/posekit/pkg/gallery"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir,omitempty"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the pose gallery",
		Long:  "Create configuration and data directories, then initialize the gallery backend.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("resolve config dir: %s", err))
	}
	dataDir := flags.dataDir

	// Load data_dir from existing config.yaml if flag was not provided.
	if dataDir == "" {
		dataDir = loadDataDirFromConfig(configDir)
	}
	dataDir, err = paths.ResolveDataDir(dataDir, "")
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("resolve data dir: %s", err))
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return exitError(exitSysError, fmt.Sprintf("create config directory: %s", err))
	}

	configPath := filepath.Join(configDir, configFileExt)
	if err := writeConfigIfMissing(configPath, dataDir); err != nil {
		return exitError(exitSysError, fmt.Sprintf("write config: %s", err))
	}

	// Initialize the data directory via Store.Attach then Detach.
	cfg := gallery.Config{
		Backend: gallery.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewBackend()
	if err := store.Attach(cfg); err != nil {
		return exitError(exitSysError, fmt.Sprintf("initialize gallery: %s", err))
	}
	if err := store.Detach(); err != nil {
		return exitError(exitSysError, fmt.Sprintf("finalize gallery: %s", err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Gallery initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		Backend: gallery.BackendSQLite,
		DataDir: dataDir,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// loadDataDirFromConfig reads data_dir from an existing config.yaml.
// Returns empty string if the file does not exist or cannot be read.
func loadDataDirFromConfig(configDir string) string {
	path := filepath.Join(configDir, configFileExt)
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ""
	}
	return cfg.DataDir
}
