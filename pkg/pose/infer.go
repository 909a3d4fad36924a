package pose

import (
	"strings"

	"github.com/atelier3d/posekit/pkg/scene"
)

// shapeKeywords maps name substrings to shapes. Order matters: the first
// matching keyword wins, so synonyms sit next to their canonical shape.
var shapeKeywords = []struct {
	keyword string
	shape   string
}{
	{"sphere", scene.ShapeSphere},
	{"cube", scene.ShapeCube},
	{"box", scene.ShapeCube},
	{"cylinder", scene.ShapeCylinder},
	{"cone", scene.ShapeCone},
	{"torus", scene.ShapeTorus},
	{"ring", scene.ShapeRing},
	{"disc", scene.ShapeDisc},
	{"circle", scene.ShapeDisc},
	{"plane", scene.ShapePlane},
	{"icosa", scene.ShapeIcosahedron},
	{"octa", scene.ShapeOctahedron},
	{"dodeca", scene.ShapeDodecahedron},
	{"tetra", scene.ShapeTetrahedron},
}

// InferShape guesses a prop's shape from its name by ordered substring
// matching on the lowercased name. Documents from before the explicit type
// tag carry no shape, so serialization and application fall back to this.
// Names that match nothing default to a cube.
func InferShape(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range shapeKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.shape
		}
	}
	return scene.ShapeCube
}
