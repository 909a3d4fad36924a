package pose

import (
	"encoding/json"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// SchemaVersion is stamped into every captured document. Readers do not
// enforce it yet; it exists so future schema changes can.
const SchemaVersion = 1

// Document is the persisted and exchanged unit: joint orientations keyed by
// joint name, an ordered prop list, and free-text notes. A document is
// immutable once produced by Serialize; applying one never mutates it.
//
// Joint values are quaternions in [x, y, z, w] wire order. Values whose
// length is not 4 are ignored on apply. Prop order is preserved so props are
// re-created in a stable order.
type Document struct {
	Version int                  `json:"version"`
	Notes   string               `json:"notes"`
	Joints  map[string][]float64 `json:"joints"`
	Props   []PropState          `json:"props"`
	SavedAt time.Time            `json:"savedAt"`
}

// PropState describes one prop in a document: its semantic shape type, a
// display name, and a full transform as plain numeric tuples.
type PropState struct {
	Type       string     `json:"type"`
	Name       string     `json:"name"`
	Position   [3]float64 `json:"position"`
	Quaternion [4]float64 `json:"quaternion"`
	Scale      [3]float64 `json:"scale"`
}

// Parse decodes a JSON pose document. A document that is valid JSON but not
// an object (null, array, scalar) fails with ErrInvalidPose.
func Parse(data []byte) (*Document, error) {
	var doc *Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrInvalidPose
	}
	return doc, nil
}

// quatToWire converts a quaternion to [x, y, z, w] wire order.
func quatToWire(q mgl64.Quat) [4]float64 {
	return [4]float64{q.V[0], q.V[1], q.V[2], q.W}
}

// quatFromWire converts a 4-element [x, y, z, w] value to a quaternion.
func quatFromWire(v []float64) mgl64.Quat {
	return mgl64.Quat{W: v[3], V: mgl64.Vec3{v[0], v[1], v[2]}}
}

func vecToWire(v mgl64.Vec3) [3]float64 {
	return [3]float64{v[0], v[1], v[2]}
}

func vecFromWire(v [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}
