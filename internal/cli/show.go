package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier3d/posekit/pkg/gallery"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a pose document from the gallery",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer store.Detach()

	entry, err := store.Get(args[0])
	if errors.Is(err, gallery.ErrNotFound) {
		return exitError(exitUserError, fmt.Sprintf("pose %q not found", args[0]))
	}
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("get pose: %s", err))
	}

	data, err := json.MarshalIndent(entry.Document, "", "  ")
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("encode document: %s", err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
