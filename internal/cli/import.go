package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/atelier3d/posekit/internal/importer"
	"github.com/atelier3d/posekit/pkg/pose"
	"github.com/atelier3d/posekit/pkg/scene"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>...",
		Short: "Import pose files into the gallery",
		Long: `Import applies each pose file to a standard humanoid rig and saves the
resulting pose in the gallery under the file's name (without .json).

Files that fail to read, parse, or apply are skipped; the rest of the batch
continues.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}
}

// diskFile adapts a filesystem path to the importer's File handle.
type diskFile struct {
	path string
}

func (f diskFile) Name() string {
	return filepath.Base(f.path)
}

func (f diskFile) ReadAll(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(f.path)
}

// notesBuffer captures the notes a full apply restores, so the gallery save
// can serialize them back out.
type notesBuffer struct {
	text string
}

func (n *notesBuffer) SetNotes(notes string) {
	n.text = notes
}

func runImport(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer store.Detach()

	// Headless world: the standard rig plus an in-memory stage. Each file is
	// applied here before what the world now holds is captured into the
	// gallery.
	world := scene.NewHumanoidWorld()
	stage := scene.NewStage()
	notes := &notesBuffer{}
	applyCtx := &pose.ApplyContext{
		World:   world,
		Scene:   stage,
		Factory: scene.NewShapeFactory(stage),
		Notes:   notes,
	}

	pipeline := importer.New(importer.Config{
		Apply: applyCtx,
		SaveToGallery: func(name string, _ bool) error {
			doc, err := pose.Serialize(world, notes.text)
			if err != nil {
				return err
			}
			_, err = store.Save(name, doc)
			return err
		},
		Notify: func(msg string, _ time.Duration) {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
		},
		Logger: slog.Default(),
	})

	files := make([]importer.File, 0, len(args))
	for _, path := range args {
		files = append(files, diskFile{path: path})
	}

	pipeline.ImportBatch(cmd.Context(), files)
	return nil
}
