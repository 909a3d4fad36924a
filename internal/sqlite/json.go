// JSON record structure mirroring the poses.jsonl file format.
package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/atelier3d/posekit/pkg/gallery"
	"github.com/atelier3d/posekit/pkg/pose"
)

// poseJSON represents one pose in poses.jsonl. The document is kept as raw
// JSON so unknown fields from future schema versions survive a round trip.
type poseJSON struct {
	PoseID    string          `json:"pose_id"`
	Name      string          `json:"name"`
	Document  json.RawMessage `json:"document"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// entry decodes the record into a gallery entry.
func (r poseJSON) entry() (*gallery.Entry, error) {
	doc, err := pose.Parse(r.Document)
	if err != nil {
		return nil, fmt.Errorf("decoding document for %q: %w", r.Name, err)
	}
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at for %q: %w", r.Name, err)
	}
	updatedAt, err := time.Parse(time.RFC3339, r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at for %q: %w", r.Name, err)
	}
	return &gallery.Entry{
		PoseID:    r.PoseID,
		Name:      r.Name,
		Document:  doc,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
