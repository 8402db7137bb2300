// Package widgets provides the built-in widget set: the root view, basic
// boxes, text, and the window chrome model used by the proxy's global
// element lookups.
package widgets

import (
	"github.com/go-drift/viewproxy/pkg/core"
	"github.com/go-drift/viewproxy/pkg/graphics"
	"github.com/go-drift/viewproxy/pkg/layout"
)

// View is the root widget that hosts the render tree.
type View struct {
	core.RenderObjectBase
	Child core.Widget
}

// ChildWidget returns the single child for render object wiring.
func (v View) ChildWidget() core.Widget {
	return v.Child
}

// CreateRenderObject builds the root render view.
func (v View) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	view := &renderView{}
	view.SetSelf(view)
	return view
}

// UpdateRenderObject updates the root render view.
func (v View) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderView struct {
	layout.RenderBoxBase
	child layout.RenderBox
}

func (r *renderView) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderView) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderView) PerformLayout() {
	constraints := r.Constraints()
	size := graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight}
	r.SetSize(size)
	if r.child != nil {
		r.child.Layout(layout.Tight(size), false)
		r.child.SetParentData(&layout.BoxParentData{})
	}
}

func (r *renderView) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}
