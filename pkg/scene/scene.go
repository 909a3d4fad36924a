package scene

// Scene is the rendering sink props are attached to. The posing engine only
// ever detaches props; attachment happens inside the prop factory so that a
// prop is never half-registered.
type Scene interface {
	// Remove detaches a prop from the scene. Removing a prop that is not
	// attached is a no-op.
	Remove(p *Prop)
}

// PropFactory constructs a prop of the requested shape and attaches it to
// its scene. Create returns a direct handle to the new prop, or nil when the
// shape could not be built; callers skip descriptors the factory declines.
type PropFactory interface {
	Create(shape string) *Prop
}

// Stage is an in-memory Scene for headless use: the CLI and tests pose
// against it instead of a real renderer.
type Stage struct {
	props []*Prop
}

// NewStage returns an empty stage.
func NewStage() *Stage {
	return &Stage{}
}

// Add attaches a prop to the stage.
func (s *Stage) Add(p *Prop) {
	s.props = append(s.props, p)
}

// Remove detaches a prop from the stage.
func (s *Stage) Remove(p *Prop) {
	for i, q := range s.props {
		if q == p {
			s.props = append(s.props[:i], s.props[i+1:]...)
			return
		}
	}
}

// Len reports how many props are attached.
func (s *Stage) Len() int {
	return len(s.props)
}

// ShapeFactory builds plain props and attaches them to a stage. It accepts
// any shape string; validation against the standard vocabulary is not its
// job.
type ShapeFactory struct {
	stage *Stage
}

// NewShapeFactory returns a factory that attaches created props to stage.
func NewShapeFactory(stage *Stage) *ShapeFactory {
	return &ShapeFactory{stage: stage}
}

// Create builds a prop of the given shape and attaches it to the stage.
func (f *ShapeFactory) Create(shape string) *Prop {
	p := NewProp(shape)
	f.stage.Add(p)
	return p
}
