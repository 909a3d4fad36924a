package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List poses in the gallery",
		RunE:  runList,
	}
}

// listEntry is the JSON output shape for one gallery entry.
type listEntry struct {
	Name    string `json:"name"`
	Joints  int    `json:"joints"`
	Props   int    `json:"props"`
	SavedAt string `json:"saved_at"`
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer store.Detach()

	entries, err := store.List()
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("list poses: %s", err))
	}

	if flags.jsonMode {
		out := make([]listEntry, 0, len(entries))
		for _, e := range entries {
			out = append(out, listEntry{
				Name:    e.Name,
				Joints:  len(e.Document.Joints),
				Props:   len(e.Document.Props),
				SavedAt: e.Document.SavedAt.Format(time.RFC3339),
			})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return exitError(exitSysError, fmt.Sprintf("encode output: %s", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No poses in gallery")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d joints\t%d props\t%s\n",
			e.Name, len(e.Document.Joints), len(e.Document.Props),
			e.Document.SavedAt.Format(time.RFC3339))
	}
	return nil
}
