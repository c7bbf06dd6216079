// Package jsonvalue contains the typed representation of a parsed JSON document.
//
// Every value in a document is represented by a [Node], which carries the
// JSON type, the decoded value and a [Path] locating the node within its tree.
// Node trees are built once by [Parse] or [ParseValue] and are not modified
// afterwards.
package jsonvalue

import (
	"fmt"
	"strconv"
	"strings"
)

type JSONType uint

const (
	Undefined JSONType = iota
	Array
	Boolean
	Null
	Number
	Object
	String
)

func (t JSONType) String() string {
	switch t {
	case Array:
		return "array"
	case Boolean:
		return "boolean"
	case Null:
		return "null"
	case Number:
		return "number"
	case Object:
		return "object"
	case String:
		return "string"
	}
	return "undefined"
}

// Path locates a node within its tree.
//
// The root has the empty path. Descending into an object field appends
// ".name" and descending into an array element appends "[i]" (0-based),
// so the first element of a list under the field "names" has the path
// ".names[0]". Two nodes have equal paths exactly when they occupy the
// same tree location, and paths only depend on the shape of the document,
// not on its scalar values.
//
// Field names are embedded without escaping. A field name containing "."
// or "]" therefore produces an ambiguous path. This is a known limitation.
type Path string

// Field returns the path of the object field name below p.
func (p Path) Field(name string) Path {
	return p + Path("."+name)
}

// Index returns the path of the array element i below p.
func (p Path) Index(i int) Path {
	return p + Path(fmt.Sprintf("[%d]", i))
}

// Segments returns the paths of all ancestors of p from the root down,
// ending with p itself. The root path yields a single empty segment.
//
// Segments assumes well-formed paths without escaped field names.
func (p Path) Segments() []Path {
	segments := []Path{""}
	s := string(p)
	for i := 1; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' || s[i] == '[' {
			if s[i-1] == '.' || s[i-1] == '[' {
				continue
			}
			segments = append(segments, Path(s[:i]))
		}
	}
	return segments
}

// Member is a single field of an object node.
type Member struct {
	Key  string
	Node Node
}

// Node is a JSON value annotated with its location in the document tree.
//
// Value holds string, float64, bool or nil for scalar types, []Node for
// Array and []Member for Object. Object members are sorted by key.
type Node struct {
	Path  Path
	Type  JSONType
	Value any
}

// IsContainer reports whether the node is an array or an object.
func (n Node) IsContainer() bool {
	return n.Type == Array || n.Type == Object
}

// Elements returns the elements of an array node in document order.
// It returns nil for all other node types.
func (n Node) Elements() []Node {
	v, _ := n.Value.([]Node)
	return v
}

// Members returns the fields of an object node sorted by key.
// It returns nil for all other node types.
func (n Node) Members() []Member {
	v, _ := n.Value.([]Member)
	return v
}

// Children returns the child nodes of a container in rendering order
// and nil for scalar nodes.
func (n Node) Children() []Node {
	switch v := n.Value.(type) {
	case []Node:
		return v
	case []Member:
		nodes := make([]Node, 0, len(v))
		for _, m := range v {
			nodes = append(nodes, m.Node)
		}
		return nodes
	}
	return nil
}

// Len returns the number of direct children of a container node
// and 0 for scalar nodes.
func (n Node) Len() int {
	switch v := n.Value.(type) {
	case []Node:
		return len(v)
	case []Member:
		return len(v)
	}
	return 0
}

// Display returns the textual form of a scalar node:
// strings quoted, numbers in their natural form, true/false and null.
// Containers yield an abbreviated placeholder.
func (n Node) Display() string {
	switch n.Type {
	case String:
		return fmt.Sprintf("\"%s\"", n.Value)
	case Number:
		return strconv.FormatFloat(n.Value.(float64), 'f', -1, 64)
	case Boolean:
		return strconv.FormatBool(n.Value.(bool))
	case Null:
		return "null"
	case Array:
		return "[...]"
	case Object:
		return "{...}"
	}
	return fmt.Sprint(n.Value)
}

// Find returns the node with the given path within the tree under root.
func Find(root Node, p Path) (Node, bool) {
	if root.Path == p {
		return root, true
	}
	if !strings.HasPrefix(string(p), string(root.Path)) {
		return Node{}, false
	}
	for _, c := range root.Children() {
		if n, ok := Find(c, p); ok {
			return n, true
		}
	}
	return Node{}, false
}

// Size returns the total number of nodes in the tree under root,
// including root itself.
func Size(root Node) int {
	n := 1
	for _, c := range root.Children() {
		n += Size(c)
	}
	return n
}
