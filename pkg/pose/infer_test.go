package pose

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelier3d/posekit/pkg/scene"
)

func TestInferShape(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"MySphere_02", scene.ShapeSphere},
		{"weird_blob", scene.ShapeCube}, // no keyword match defaults to cube
		{"GiftBox", scene.ShapeCube},
		{"CUBE_primary", scene.ShapeCube},
		{"oil_drum_cylinder", scene.ShapeCylinder},
		{"TrafficCone3", scene.ShapeCone},
		{"torus_knotless", scene.ShapeTorus},
		{"wedding ring", scene.ShapeRing},
		{"disc golf", scene.ShapeDisc},
		{"inner circle", scene.ShapeDisc},
		{"ground plane", scene.ShapePlane},
		{"icosa gem", scene.ShapeIcosahedron},
		{"octahedron", scene.ShapeOctahedron},
		{"dodecaDie", scene.ShapeDodecahedron},
		{"tetra pod", scene.ShapeTetrahedron},
		{"", scene.ShapeCube},
		// First match wins over later keywords.
		{"sphere_in_a_box", scene.ShapeSphere},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferShape(tt.name))
		})
	}
}
