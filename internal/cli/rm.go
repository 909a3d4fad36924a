package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier3d/posekit/pkg/gallery"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a pose from the gallery",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer store.Detach()

	if err := store.Delete(args[0]); err != nil {
		if errors.Is(err, gallery.ErrNotFound) {
			return exitError(exitUserError, fmt.Sprintf("pose %q not found", args[0]))
		}
		return exitError(exitSysError, fmt.Sprintf("delete pose: %s", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", args[0])
	return nil
}
