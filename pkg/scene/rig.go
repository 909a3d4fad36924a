package scene

// humanoidJoints lists the standard character hierarchy in construction
// order: each entry names its parent, with the hips as the root.
var humanoidJoints = []struct {
	name   string
	parent string
}{
	{"hips", ""},
	{"spine", "hips"},
	{"chest", "spine"},
	{"neck", "chest"},
	{"head", "neck"},
	{"leftShoulder", "chest"},
	{"leftUpperArm", "leftShoulder"},
	{"leftLowerArm", "leftUpperArm"},
	{"leftHand", "leftLowerArm"},
	{"rightShoulder", "chest"},
	{"rightUpperArm", "rightShoulder"},
	{"rightLowerArm", "rightUpperArm"},
	{"rightHand", "rightLowerArm"},
	{"leftUpperLeg", "hips"},
	{"leftLowerLeg", "leftUpperLeg"},
	{"leftFoot", "leftLowerLeg"},
	{"rightUpperLeg", "hips"},
	{"rightLowerLeg", "rightUpperLeg"},
	{"rightFoot", "rightLowerLeg"},
}

// NewHumanoidWorld builds a world carrying the standard humanoid joint
// hierarchy, every joint at identity orientation and no props. Geometry is
// a renderer concern; this constructs only the posable skeleton.
func NewHumanoidWorld() *World {
	w := NewWorld()
	for _, hj := range humanoidJoints {
		w.AddJoint(hj.name, hj.parent)
	}
	return w
}
