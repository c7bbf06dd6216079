// Package treestate tracks which container nodes of a JSON tree are collapsed.
//
// A [State] is an immutable set of collapsed paths. All operations return a
// new State and never modify their input, so a host can keep old states
// around, e.g. inside deferred event callbacks created during rendering.
package treestate

import (
	"github.com/ErikKalkoken/jsontreeview/internal/jsonvalue"
)

// State is a set of collapsed container paths.
// The zero value is the fully expanded state.
type State struct {
	collapsed map[jsonvalue.Path]struct{}
}

// ExpandAll returns the fully expanded state.
func ExpandAll() State {
	return State{}
}

// IsCollapsed reports whether the node with the given path is collapsed.
func IsCollapsed(p jsonvalue.Path, s State) bool {
	_, found := s.collapsed[p]
	return found
}

// Size returns the number of collapsed paths.
func Size(s State) int {
	return len(s.collapsed)
}

// Collapse returns a state with the given path collapsed.
func Collapse(p jsonvalue.Path, s State) State {
	if IsCollapsed(p, s) {
		return s
	}
	collapsed := make(map[jsonvalue.Path]struct{}, len(s.collapsed)+1)
	for k := range s.collapsed {
		collapsed[k] = struct{}{}
	}
	collapsed[p] = struct{}{}
	return State{collapsed: collapsed}
}

// Expand returns a state with the given path expanded.
func Expand(p jsonvalue.Path, s State) State {
	if !IsCollapsed(p, s) {
		return s
	}
	collapsed := make(map[jsonvalue.Path]struct{}, len(s.collapsed)-1)
	for k := range s.collapsed {
		if k != p {
			collapsed[k] = struct{}{}
		}
	}
	return State{collapsed: collapsed}
}

// CollapseToDepth returns the state that collapses every container node of
// the tree under root whose depth is maxDepth or greater. The root has
// depth 0, so maxDepth 0 collapses the complete tree including the root.
//
// Containers below an already collapsed container still enter the set.
// Those entries are redundant for rendering, since a collapsed node hides
// its whole subtree, but harmless.
func CollapseToDepth(maxDepth int, root jsonvalue.Node) State {
	collapsed := make(map[jsonvalue.Path]struct{})
	collectContainers(root, 0, maxDepth, collapsed)
	if len(collapsed) == 0 {
		return State{}
	}
	return State{collapsed: collapsed}
}

func collectContainers(n jsonvalue.Node, depth, maxDepth int, collapsed map[jsonvalue.Path]struct{}) {
	if !n.IsContainer() {
		return
	}
	if depth >= maxDepth {
		collapsed[n.Path] = struct{}{}
	}
	for _, c := range n.Children() {
		collectContainers(c, depth+1, maxDepth, collapsed)
	}
}
