// Package importer runs batch imports of pose document files: each file is
// parsed, applied to the live world, and handed to the gallery, with
// per-item failure isolation so one bad file never sinks the batch.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atelier3d/posekit/pkg/pose"
)

const jsonSuffix = ".json"

// File is a handle to one importable document: a display name and an
// asynchronous whole-text read.
type File interface {
	Name() string
	ReadAll(ctx context.Context) ([]byte, error)
}

// Config wires the pipeline's collaborators. Apply is required; the hooks
// are optional and skipped when nil.
type Config struct {
	// Apply carries the live world, scene, and factory each imported
	// document is applied against before it is persisted.
	Apply *pose.ApplyContext

	// SaveToGallery persists an applied pose under a display name.
	// withToast is always false during batch import; the pipeline emits a
	// single summary notification instead.
	SaveToGallery func(name string, withToast bool) error

	// RenderGallery re-renders the gallery once after the batch completes.
	RenderGallery func()

	// Notify receives the single batch summary.
	Notify func(msg string, d time.Duration)

	// Logger for skipped-file warnings.
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Pipeline imports batches of pose files.
type Pipeline struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a Pipeline with the given configuration.
func New(cfg Config) *Pipeline {
	cfg.defaults()
	return &Pipeline{cfg: cfg, logger: cfg.Logger}
}

// ImportBatch imports an ordered collection of files and returns the number
// imported. Files not ending in .json (case-insensitive) are silently
// skipped: not counted, not errored. Candidates are processed strictly
// sequentially — the shared world and scene have a single writer, so two
// files' applications must never interleave. Any per-file failure (read,
// parse, apply validation, gallery save) is logged and that file is skipped;
// the batch always runs to completion.
//
// After the loop the gallery re-render hook fires once regardless of
// failures, then exactly one summary notification is emitted.
func (p *Pipeline) ImportBatch(ctx context.Context, files []File) int {
	imported := 0
	for _, f := range files {
		name := f.Name()
		if !strings.HasSuffix(strings.ToLower(name), jsonSuffix) {
			continue
		}
		if err := p.importOne(ctx, f); err != nil {
			p.logger.Warn("skipping pose file", "file", name, "error", err)
			continue
		}
		imported++
	}

	if p.cfg.RenderGallery != nil {
		p.cfg.RenderGallery()
	}
	p.notifySummary(imported)
	return imported
}

// importOne reads, parses, applies, and persists a single file.
func (p *Pipeline) importOne(ctx context.Context, f File) error {
	data, err := f.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	doc, err := pose.Parse(data)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	// Apply before saving so any downstream capture reflects exactly this pose.
	if err := pose.Apply(doc, p.cfg.Apply); err != nil {
		return fmt.Errorf("apply: %w", err)
	}

	if p.cfg.SaveToGallery != nil {
		name := f.Name()
		name = name[:len(name)-len(jsonSuffix)]
		if err := p.cfg.SaveToGallery(name, false); err != nil {
			return fmt.Errorf("save to gallery: %w", err)
		}
	}
	return nil
}

func (p *Pipeline) notifySummary(imported int) {
	if p.cfg.Notify == nil {
		return
	}
	msg := "No valid poses imported"
	switch {
	case imported == 1:
		msg = "Imported 1 pose"
	case imported > 1:
		msg = fmt.Sprintf("Imported %d poses", imported)
	}
	p.cfg.Notify(msg, 3*time.Second)
}
