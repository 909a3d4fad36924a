package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHumanoidWorld(t *testing.T) {
	w := NewHumanoidWorld()

	assert.Len(t, w.Joints, len(humanoidJoints))
	assert.Empty(t, w.Props)

	// Names are unique.
	seen := make(map[string]bool)
	for _, j := range w.Joints {
		assert.False(t, seen[j.Name], "duplicate joint %q", j.Name)
		seen[j.Name] = true
	}

	// Every parent refers to an existing joint; exactly one root.
	roots := 0
	for _, j := range w.Joints {
		if j.Parent == "" {
			roots++
			continue
		}
		assert.NotNil(t, w.Joint(j.Parent), "joint %q has unknown parent %q", j.Name, j.Parent)
	}
	assert.Equal(t, 1, roots)

	head := w.Joint("head")
	require.NotNil(t, head)
	assert.Equal(t, "neck", head.Parent)
}
