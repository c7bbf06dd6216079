// Package treerender renders a JSON node tree into Fyne canvas objects.
//
// Rendering is a pure function over a node tree and a collapse state.
// Interactive elements do not change anything themselves. They carry
// deferred callbacks which compute a new state from the state that was
// current when they were rendered and hand it to the host, which is
// expected to render again with the new state.
package treerender

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	kxwidget "github.com/ErikKalkoken/fyne-kx/widget"

	"github.com/ErikKalkoken/jsontreeview/internal/jsonvalue"
	"github.com/ErikKalkoken/jsontreeview/internal/treestate"
)

const (
	indentWidth   = 24
	expandGlyph   = "+"
	collapseGlyph = "-"
	ellipsis      = "…"
)

var type2importance = map[jsonvalue.JSONType]widget.Importance{
	jsonvalue.Array:   widget.HighImportance,
	jsonvalue.Object:  widget.HighImportance,
	jsonvalue.String:  widget.WarningImportance,
	jsonvalue.Number:  widget.SuccessImportance,
	jsonvalue.Boolean: widget.DangerImportance,
	jsonvalue.Null:    widget.DangerImportance,
}

// Config carries the host callbacks for one render pass.
// It is supplied fresh per render and never retained.
type Config struct {
	// OnSelect is invoked with the node's path when a scalar element is
	// activated. When nil, scalar elements are inert.
	OnSelect func(jsonvalue.Path)

	// ToMsg receives the new state produced by an expand or collapse
	// interaction.
	ToMsg func(treestate.State)
}

// Output is the rendered form of a node tree.
// Rendered elements can be addressed by their node's path.
type Output struct {
	Root fyne.CanvasObject

	elements map[jsonvalue.Path]fyne.CanvasObject
	toggles  map[jsonvalue.Path]fyne.CanvasObject
}

// Render renders the tree under node with the given collapse state.
// The children of a collapsed container are not rendered at all,
// so the cost of a render pass is bound by the visible tree only.
func Render(cfg Config, node jsonvalue.Node, state treestate.State) *Output {
	o := &Output{
		elements: make(map[jsonvalue.Path]fyne.CanvasObject),
		toggles:  make(map[jsonvalue.Path]fyne.CanvasObject),
	}
	o.Root = o.render(0, cfg, node, state)
	return o
}

// Lookup returns the rendered element for the node with the given path.
// It reports false for nodes that were not rendered, e.g. inside a
// collapsed container.
func (o *Output) Lookup(p jsonvalue.Path) (fyne.CanvasObject, bool) {
	obj, found := o.elements[p]
	return obj, found
}

// Toggle returns the expand/collapse control of the container with the
// given path, when it was rendered with one.
func (o *Output) Toggle(p jsonvalue.Path) (fyne.CanvasObject, bool) {
	obj, found := o.toggles[p]
	return obj, found
}

// Len returns the number of rendered nodes.
func (o *Output) Len() int {
	return len(o.elements)
}

func (o *Output) render(depth int, cfg Config, node jsonvalue.Node, state treestate.State) fyne.CanvasObject {
	var obj fyne.CanvasObject
	if node.IsContainer() {
		obj = o.renderContainer(depth, cfg, node, state)
	} else {
		obj = o.renderScalar(cfg, node)
	}
	o.elements[node.Path] = obj
	return obj
}

func (o *Output) renderScalar(cfg Config, node jsonvalue.Node) fyne.CanvasObject {
	text := node.Display()
	if cfg.OnSelect == nil {
		l := widget.NewLabel(text)
		l.Importance = type2importance[node.Type]
		return l
	}
	l := kxwidget.NewTappableLabel(text, func() {
		cfg.OnSelect(node.Path)
	})
	l.Importance = type2importance[node.Type]
	return l
}

func (o *Output) renderContainer(depth int, cfg Config, node jsonvalue.Node, state treestate.State) fyne.CanvasObject {
	opening, closing := "[", "]"
	if node.Type == jsonvalue.Object {
		opening, closing = "{", "}"
	}
	if node.Len() == 0 {
		return newBracketLabel(opening + closing)
	}
	if treestate.IsCollapsed(node.Path, state) {
		row := []fyne.CanvasObject{newBracketLabel(opening)}
		if depth > 0 {
			row = append(row, o.newToggle(cfg, node.Path, expandGlyph, func() treestate.State {
				return treestate.Expand(node.Path, state)
			}))
		}
		row = append(row, newSeparatorLabel(ellipsis), newBracketLabel(closing))
		return newInlineRow(row...)
	}
	head := []fyne.CanvasObject{newBracketLabel(opening)}
	if depth > 0 {
		head = append(head, o.newToggle(cfg, node.Path, collapseGlyph, func() treestate.State {
			return treestate.Collapse(node.Path, state)
		}))
	}
	items := container.NewVBox()
	if node.Type == jsonvalue.Object {
		for _, m := range node.Members() {
			k := widget.NewLabel(m.Key)
			k.TextStyle.Bold = true
			items.Add(newInlineRow(
				k,
				newSeparatorLabel(":"),
				o.render(depth+1, cfg, m.Node, state),
				newSeparatorLabel(","),
			))
		}
	} else {
		for _, c := range node.Elements() {
			items.Add(newInlineRow(
				o.render(depth+1, cfg, c, state),
				newSeparatorLabel(","),
			))
		}
	}
	return container.NewVBox(
		newInlineRow(head...),
		container.New(layout.NewCustomPaddedLayout(0, 0, indentWidth, 0), items),
		newBracketLabel(closing),
	)
}

// newToggle creates an expand or collapse control. The next state is not
// computed here, but only inside the tap callback when the interaction
// actually fires.
func (o *Output) newToggle(cfg Config, p jsonvalue.Path, glyph string, next func() treestate.State) fyne.CanvasObject {
	l := kxwidget.NewTappableLabel(glyph, func() {
		if cfg.ToMsg != nil {
			cfg.ToMsg(next())
		}
	})
	l.Importance = widget.LowImportance
	o.toggles[p] = l
	return l
}

func newBracketLabel(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Importance = widget.HighImportance
	return l
}

func newSeparatorLabel(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Importance = widget.LowImportance
	return l
}

func newInlineRow(objects ...fyne.CanvasObject) *fyne.Container {
	return container.New(layout.NewCustomPaddedHBoxLayout(-5), objects...)
}
