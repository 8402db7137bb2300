package widgets

import (
	"github.com/go-drift/viewproxy/pkg/core"
	"github.com/go-drift/viewproxy/pkg/graphics"
	"github.com/go-drift/viewproxy/pkg/layout"
)

// EdgeInsets describes padding on each side of a box.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll returns uniform insets on all sides.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// Horizontal returns the combined left and right insets.
func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns the combined top and bottom insets.
func (e EdgeInsets) Vertical() float64 { return e.Top + e.Bottom }

// Padding insets its child by the given edge insets.
type Padding struct {
	core.RenderObjectBase
	Insets EdgeInsets
	Child  core.Widget
}

func (p Padding) ChildWidget() core.Widget {
	return p.Child
}

func (p Padding) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderPadding{insets: p.Insets}
	box.SetSelf(box)
	return box
}

func (p Padding) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderPadding); ok {
		box.insets = p.Insets
		box.MarkNeedsLayout()
		box.MarkNeedsPaint()
	}
}

type renderPadding struct {
	layout.RenderBoxBase
	child  layout.RenderBox
	insets EdgeInsets
}

func (r *renderPadding) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderPadding) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderPadding) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{
			Width:  r.insets.Horizontal(),
			Height: r.insets.Vertical(),
		}))
		return
	}

	inner := layout.Constraints{
		MinWidth:  max(0, constraints.MinWidth-r.insets.Horizontal()),
		MaxWidth:  max(0, constraints.MaxWidth-r.insets.Horizontal()),
		MinHeight: max(0, constraints.MinHeight-r.insets.Vertical()),
		MaxHeight: max(0, constraints.MaxHeight-r.insets.Vertical()),
	}
	r.child.Layout(inner, true) // true: we read child.Size()
	r.child.SetParentData(&layout.BoxParentData{
		Offset: graphics.Offset{X: r.insets.Left, Y: r.insets.Top},
	})
	childSize := r.child.Size()
	r.SetSize(constraints.Constrain(graphics.Size{
		Width:  childSize.Width + r.insets.Horizontal(),
		Height: childSize.Height + r.insets.Vertical(),
	}))
}

func (r *renderPadding) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
}
