package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier3d/posekit/pkg/posekit"
)

const modulePath = "github.com/atelier3d/posekit"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the posekit version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "posekit v%s\nmodule: %s\n", posekit.Version, modulePath)
			return nil
		},
	}
}
