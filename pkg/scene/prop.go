package scene

import "github.com/go-gl/mathgl/mgl64"

// Shape names for the standard prop vocabulary. Prop shapes are open-ended
// strings; these are the values the built-in factory understands and the
// name-based inference produces.
const (
	ShapeSphere       = "sphere"
	ShapeCube         = "cube"
	ShapeCylinder     = "cylinder"
	ShapeCone         = "cone"
	ShapeTorus        = "torus"
	ShapeRing         = "ring"
	ShapeDisc         = "disc"
	ShapePlane        = "plane"
	ShapeIcosahedron  = "icosahedron"
	ShapeOctahedron   = "octahedron"
	ShapeDodecahedron = "dodecahedron"
	ShapeTetrahedron  = "tetrahedron"
)

// Prop is a freestanding object placed independently of the joint hierarchy.
// It carries a full transform and a semantic shape type. FromPose marks
// props that were reconstructed from a pose document and can therefore be
// rebuilt from one.
type Prop struct {
	Shape    string
	Name     string
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
	FromPose bool
}

// NewProp returns a prop of the given shape at the origin with identity
// rotation and unit scale.
func NewProp(shape string) *Prop {
	return &Prop{
		Shape:    shape,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}
