package proxy

import (
	"fmt"

	"github.com/go-drift/viewproxy/pkg/core"
	"github.com/go-drift/viewproxy/pkg/graphics"
	"github.com/go-drift/viewproxy/pkg/layout"
)

// tagBox is a pass-through box whose render object carries a tag, so
// tests can tell matched views apart by description and by field.
type tagBox struct {
	core.RenderObjectBase
	Tag   string
	Child core.Widget
}

func (b tagBox) ChildWidget() core.Widget {
	return b.Child
}

func (b tagBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderTagBox{tag: b.Tag}
	box.SetSelf(box)
	return box
}

func (b tagBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderTagBox); ok {
		box.tag = b.Tag
		box.MarkNeedsLayout()
		box.MarkNeedsPaint()
	}
}

type renderTagBox struct {
	layout.RenderBoxBase
	tag   string
	child layout.RenderBox
}

func (r *renderTagBox) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderTagBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderTagBox) PerformLayout() {
	constraints := r.Constraints()
	size := constraints.Constrain(graphics.Size{})
	if r.child != nil {
		r.child.Layout(constraints.Loosen(), true)
		r.child.SetParentData(&layout.BoxParentData{})
		size = constraints.Constrain(r.child.Size())
	}
	r.SetSize(size)
}

func (r *renderTagBox) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
}

func (r *renderTagBox) DebugDescription() string {
	return fmt.Sprintf("TagBox(%q)", r.tag)
}

// markBox is a second distinct render type, for tests that need the type
// gate to discriminate between kinds of views.
type markBox struct {
	core.RenderObjectBase
	Child core.Widget
}

func (b markBox) ChildWidget() core.Widget {
	return b.Child
}

func (b markBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderMarkBox{}
	box.SetSelf(box)
	return box
}

func (b markBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderMarkBox struct {
	layout.RenderBoxBase
	child layout.RenderBox
}

func (r *renderMarkBox) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderMarkBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderMarkBox) PerformLayout() {
	constraints := r.Constraints()
	size := constraints.Constrain(graphics.Size{})
	if r.child != nil {
		r.child.Layout(constraints.Loosen(), true)
		r.child.SetParentData(&layout.BoxParentData{})
		size = constraints.Constrain(r.child.Size())
	}
	r.SetSize(size)
}

func (r *renderMarkBox) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
}
