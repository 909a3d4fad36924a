package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atelier3d/posekit/pkg/gallery"
)

func newExportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a pose document to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default: <name>.json)")
	return cmd
}

func runExport(cmd *cobra.Command, name, outPath string) error {
	store, err := attachStore()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer store.Detach()

	entry, err := store.Get(name)
	if errors.Is(err, gallery.ErrNotFound) {
		return exitError(exitUserError, fmt.Sprintf("pose %q not found", name))
	}
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("get pose: %s", err))
	}

	data, err := json.MarshalIndent(entry.Document, "", "  ")
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("encode document: %s", err))
	}
	data = append(data, '\n')

	if outPath == "" {
		outPath = name + ".json"
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return exitError(exitSysError, fmt.Sprintf("write %s: %s", outPath, err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %q to %s\n", name, outPath)
	return nil
}
