package pose

import (
	"strings"
	"time"

	"github.com/atelier3d/posekit/pkg/scene"
)

// Serialize captures the live world into a new pose document: every joint's
// current orientation keyed by name, every prop's type and transform in
// collection order, plus free-text notes and a capture timestamp. It reads
// the world and nothing else.
//
// Joint names are expected to be unique; a duplicate name silently
// overwrites the earlier entry (last write wins).
func Serialize(w *scene.World, notes string) (*Document, error) {
	if w == nil {
		return nil, ErrMissingWorld
	}

	doc := &Document{
		Version: SchemaVersion,
		Notes:   notes,
		Joints:  make(map[string][]float64, len(w.Joints)),
		SavedAt: time.Now().UTC(),
	}

	for _, j := range w.Joints {
		q := quatToWire(j.Rotation)
		doc.Joints[j.Name] = q[:]
	}

	for _, p := range w.Props {
		shape := p.Shape
		if strings.TrimSpace(shape) == "" {
			shape = InferShape(p.Name)
		}
		doc.Props = append(doc.Props, PropState{
			Type:       shape,
			Name:       p.Name,
			Position:   vecToWire(p.Position),
			Quaternion: quatToWire(p.Rotation),
			Scale:      vecToWire(p.Scale),
		})
	}

	return doc, nil
}
