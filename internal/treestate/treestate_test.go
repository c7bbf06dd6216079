package treestate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ErikKalkoken/jsontreeview/internal/jsonvalue"
	"github.com/ErikKalkoken/jsontreeview/internal/treestate"
)

func TestState(t *testing.T) {
	t.Run("zero value should be fully expanded", func(t *testing.T) {
		var s treestate.State
		assert.False(t, treestate.IsCollapsed("", s))
		assert.False(t, treestate.IsCollapsed(".alpha", s))
	})
	t.Run("can collapse and expand a path", func(t *testing.T) {
		s := treestate.ExpandAll()
		s2 := treestate.Collapse(".alpha", s)
		assert.True(t, treestate.IsCollapsed(".alpha", s2))
		s3 := treestate.Expand(".alpha", s2)
		assert.False(t, treestate.IsCollapsed(".alpha", s3))
	})
	t.Run("should not modify input state", func(t *testing.T) {
		// given
		s := treestate.Collapse(".alpha", treestate.ExpandAll())
		// when
		s2 := treestate.Collapse(".bravo", s)
		s3 := treestate.Expand(".alpha", s)
		// then
		assert.True(t, treestate.IsCollapsed(".alpha", s))
		assert.False(t, treestate.IsCollapsed(".bravo", s))
		assert.True(t, treestate.IsCollapsed(".bravo", s2))
		assert.False(t, treestate.IsCollapsed(".alpha", s3))
	})
	t.Run("collapse should be idempotent", func(t *testing.T) {
		s := treestate.Collapse(".alpha", treestate.ExpandAll())
		s2 := treestate.Collapse(".alpha", s)
		assert.Equal(t, s, s2)
	})
	t.Run("expand should be idempotent", func(t *testing.T) {
		s := treestate.ExpandAll()
		assert.Equal(t, s, treestate.Expand(".alpha", s))
	})
	t.Run("expand should undo collapse and keep other members", func(t *testing.T) {
		// given
		s := treestate.Collapse(".bravo", treestate.ExpandAll())
		// when
		s2 := treestate.Expand(".alpha", treestate.Collapse(".alpha", s))
		// then
		assert.False(t, treestate.IsCollapsed(".alpha", s2))
		assert.True(t, treestate.IsCollapsed(".bravo", s2))
		assert.Equal(t, treestate.Size(s), treestate.Size(s2))
	})
	t.Run("expand all should reset any prior state", func(t *testing.T) {
		s := treestate.Collapse(".alpha", treestate.Collapse("[1]", treestate.ExpandAll()))
		assert.Equal(t, 2, treestate.Size(s))
		s2 := treestate.ExpandAll()
		assert.Equal(t, 0, treestate.Size(s2))
		assert.False(t, treestate.IsCollapsed(".alpha", s2))
		assert.False(t, treestate.IsCollapsed("[1]", s2))
	})
}

func TestCollapseToDepth(t *testing.T) {
	node, err := jsonvalue.Parse([]byte(`{"alpha":{"charlie":[1,2]},"bravo":[[true]],"delta":5}`))
	if err != nil {
		t.Fatal(err)
	}
	t.Run("depth 0 should collapse every container including the root", func(t *testing.T) {
		s := treestate.CollapseToDepth(0, node)
		for _, p := range []jsonvalue.Path{"", ".alpha", ".alpha.charlie", ".bravo", ".bravo[0]"} {
			assert.True(t, treestate.IsCollapsed(p, s), "expected %q to be collapsed", p)
		}
	})
	t.Run("depth 1 should keep the root expanded", func(t *testing.T) {
		s := treestate.CollapseToDepth(1, node)
		assert.False(t, treestate.IsCollapsed("", s))
		assert.True(t, treestate.IsCollapsed(".alpha", s))
		assert.True(t, treestate.IsCollapsed(".bravo", s))
		assert.True(t, treestate.IsCollapsed(".bravo[0]", s))
	})
	t.Run("depth 2 should collapse deeper containers only", func(t *testing.T) {
		s := treestate.CollapseToDepth(2, node)
		assert.False(t, treestate.IsCollapsed("", s))
		assert.False(t, treestate.IsCollapsed(".alpha", s))
		assert.True(t, treestate.IsCollapsed(".alpha.charlie", s))
		assert.True(t, treestate.IsCollapsed(".bravo[0]", s))
	})
	t.Run("depth beyond tree depth should be fully expanded", func(t *testing.T) {
		s := treestate.CollapseToDepth(10, node)
		assert.Equal(t, treestate.ExpandAll(), s)
	})
	t.Run("scalars should never enter the set", func(t *testing.T) {
		s := treestate.CollapseToDepth(0, node)
		assert.False(t, treestate.IsCollapsed(".delta", s))
		assert.Equal(t, 5, treestate.Size(s))
	})
	t.Run("scalar root should yield the expanded state", func(t *testing.T) {
		scalar, err := jsonvalue.Parse([]byte(`42`))
		if assert.NoError(t, err) {
			assert.Equal(t, treestate.ExpandAll(), treestate.CollapseToDepth(0, scalar))
		}
	})
}
