package scene

import "github.com/go-gl/mathgl/mgl64"

// Joint is a named orientable pivot in the character hierarchy. It holds
// only a local rotation; position and parentage are fixed at construction
// and never change during a session.
type Joint struct {
	Name     string
	Parent   string // parent joint name, empty for the root
	Rotation mgl64.Quat
}

// World holds the shared mutable state a posing session operates on: the
// character's joints and the freestanding prop collection. Joints are
// created once at character build time and mutated in place; props are
// created and destroyed in bulk by full pose application.
//
// World is not safe for concurrent use. Callers must serialize access, the
// way a single UI event loop does.
type World struct {
	Joints []*Joint
	Props  []*Prop

	byName map[string]*Joint
}

// NewWorld returns an empty world with no joints or props.
func NewWorld() *World {
	return &World{byName: make(map[string]*Joint)}
}

// AddJoint creates a joint with identity orientation and registers it under
// its name. Joint names are expected to be unique; on a duplicate name the
// lookup index keeps the newest joint (last write wins).
func (w *World) AddJoint(name, parent string) *Joint {
	j := &Joint{Name: name, Parent: parent, Rotation: mgl64.QuatIdent()}
	w.Joints = append(w.Joints, j)
	w.byName[name] = j
	return j
}

// Joint returns the joint registered under name, or nil if none exists.
func (w *World) Joint(name string) *Joint {
	return w.byName[name]
}

// AddProp appends a prop to the world's prop collection.
func (w *World) AddProp(p *Prop) {
	w.Props = append(w.Props, p)
}

// ClearProps empties the prop collection. It does not detach the props from
// any scene; that is the caller's responsibility.
func (w *World) ClearProps() {
	w.Props = nil
}

// ResetJoints sets every joint back to identity orientation.
func (w *World) ResetJoints() {
	for _, j := range w.Joints {
		j.Rotation = mgl64.QuatIdent()
	}
}
