package pose

import (
	"fmt"
	"strings"
	"time"

	"github.com/atelier3d/posekit/pkg/scene"
)

// noticeDuration is the display time passed to notification hooks.
const noticeDuration = 2 * time.Second

// NotesSink receives the free-text notes restored by a full apply.
type NotesSink interface {
	SetNotes(notes string)
}

// ApplyContext carries the live world and the collaborators a pose
// application may touch. World and Scene are required for a full apply;
// every other field is optional and skipped when nil.
type ApplyContext struct {
	World   *scene.World
	Scene   scene.Scene
	Factory scene.PropFactory

	// ResetJoints sets every live joint to identity orientation. When nil,
	// the joints-only apply resets the world directly.
	ResetJoints func()

	Notes           NotesSink
	Notify          func(msg string, d time.Duration)
	RefreshOutlines func()
	ForceRender     func()
}

func (ctx *ApplyContext) notify(msg string) {
	if ctx.Notify != nil {
		ctx.Notify(msg, noticeDuration)
	}
}

// Apply destructively applies a pose document to the live world.
//
// Joints are a partial apply: only joints whose names appear in the document
// with a 4-element quaternion are overwritten (absolute replace, not
// composed); every other joint keeps its prior orientation. Props are a full
// rebuild: all live props are detached from the scene and the collection is
// replaced by props built from the document in order. Notes are restored
// verbatim when a sink is supplied. After mutation the outline refresh and
// force-render hooks each fire once, then a "Pose loaded" notification.
//
// Validation errors (nil document, missing world or scene) propagate to the
// caller; there is no partial recovery within one apply.
func Apply(doc *Document, ctx *ApplyContext) error {
	if doc == nil {
		return ErrInvalidPose
	}
	if ctx == nil || ctx.World == nil {
		return ErrMissingWorld
	}
	if ctx.Scene == nil {
		return ErrMissingScene
	}

	applyJointMap(ctx.World, doc.Joints)
	rebuildProps(doc, ctx)

	if ctx.Notes != nil {
		ctx.Notes.SetNotes(doc.Notes)
	}
	if ctx.RefreshOutlines != nil {
		ctx.RefreshOutlines()
	}
	if ctx.ForceRender != nil {
		ctx.ForceRender()
	}
	ctx.notify("Pose loaded")
	return nil
}

// ApplyJoints applies only the joints of a document, for discrete presets.
// Every live joint is first reset to identity so a document carrying a
// subset of joints still yields a fully determined pose, then matching
// joints are applied as in Apply. Returns the number of joints applied.
// Props and notes are never touched.
func ApplyJoints(doc *Document, ctx *ApplyContext) (int, error) {
	if doc == nil || doc.Joints == nil {
		return 0, ErrInvalidPreset
	}
	if ctx == nil || ctx.World == nil {
		return 0, ErrMissingWorld
	}

	if ctx.ResetJoints != nil {
		ctx.ResetJoints()
	} else {
		ctx.World.ResetJoints()
	}

	n := applyJointMap(ctx.World, doc.Joints)
	if n == 0 {
		ctx.notify("No matching joints in pose")
	} else {
		ctx.notify(fmt.Sprintf("Applied %d joint(s)", n))
	}
	return n, nil
}

// applyJointMap overwrites the orientation of every live joint whose name
// appears in joints with a 4-element value. Unmatched names and wrong-length
// values are silent no-ops for that entry. Returns the number applied.
func applyJointMap(w *scene.World, joints map[string][]float64) int {
	n := 0
	for _, j := range w.Joints {
		q, ok := joints[j.Name]
		if !ok || len(q) != 4 {
			continue
		}
		j.Rotation = quatFromWire(q)
		n++
	}
	return n
}

// rebuildProps replaces the world's prop set with props built from the
// document. This is never a merge: existing props are detached from the
// scene and dropped first. The factory returns a handle to each prop it
// creates; a nil handle means the descriptor is silently skipped.
func rebuildProps(doc *Document, ctx *ApplyContext) {
	for _, p := range ctx.World.Props {
		ctx.Scene.Remove(p)
	}
	ctx.World.ClearProps()

	for _, ps := range doc.Props {
		shape := strings.ToLower(strings.TrimSpace(ps.Type))
		if shape == "" {
			shape = InferShape(ps.Name)
		}
		if ctx.Factory == nil {
			continue
		}
		p := ctx.Factory.Create(shape)
		if p == nil {
			continue
		}
		p.Shape = shape
		p.Name = ps.Name
		p.Position = vecFromWire(ps.Position)
		p.Rotation = quatFromWire(ps.Quaternion[:])
		p.Scale = vecFromWire(ps.Scale)
		p.FromPose = true
		ctx.World.AddProp(p)
	}
}
