package jsonvalue

import (
	"fmt"
	"slices"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseError is returned when a document can not be turned into a node tree.
// It is the only error produced by this package.
type ParseError struct {
	msg   string
	cause error
}

func (e *ParseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.msg, e.cause)
	}
	return e.msg
}

func (e *ParseError) Unwrap() error {
	return e.cause
}

// Parse builds a node tree from raw JSON text.
func Parse(data []byte) (Node, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Node{}, &ParseError{msg: "invalid JSON text", cause: err}
	}
	return ParseValue(v)
}

// ParseValue builds a node tree from an already decoded generic JSON value
// as produced by encoding/json compatible decoders, i.e. any combination of
// map[string]any, []any, string, float64, bool and nil.
//
// The value tree is built bottom-up and every node is then assigned its
// path in a second top-down pass over the complete tree.
func ParseValue(data any) (Node, error) {
	n, err := build(data)
	if err != nil {
		return Node{}, err
	}
	annotate(&n, "")
	return n, nil
}

func build(data any) (Node, error) {
	switch v := data.(type) {
	case string:
		return Node{Type: String, Value: v}, nil
	case float64:
		return Node{Type: Number, Value: v}, nil
	case bool:
		return Node{Type: Boolean, Value: v}, nil
	case nil:
		return Node{Type: Null}, nil
	case []any:
		elements := make([]Node, 0, len(v))
		for _, x := range v {
			c, err := build(x)
			if err != nil {
				return Node{}, err
			}
			elements = append(elements, c)
		}
		return Node{Type: Array, Value: elements}, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		members := make([]Member, 0, len(v))
		for _, k := range keys {
			c, err := build(v[k])
			if err != nil {
				return Node{}, err
			}
			members = append(members, Member{Key: k, Node: c})
		}
		return Node{Type: Object, Value: members}, nil
	}
	return Node{}, &ParseError{msg: fmt.Sprintf("%T does not match any recognized JSON value shape", data)}
}

// annotate assigns n and all its descendants their paths.
func annotate(n *Node, p Path) {
	n.Path = p
	switch v := n.Value.(type) {
	case []Node:
		for i := range v {
			annotate(&v[i], p.Index(i))
		}
	case []Member:
		for i := range v {
			annotate(&v[i].Node, p.Field(v[i].Key))
		}
	}
}
