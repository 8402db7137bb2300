package widgets

import (
	"github.com/go-drift/viewproxy/pkg/core"
	"github.com/go-drift/viewproxy/pkg/graphics"
	"github.com/go-drift/viewproxy/pkg/layout"
)

// Stack lays out its children on top of each other, aligned to the top
// left, and sizes itself to the largest child (bounded by the incoming
// constraints). Later children paint over earlier ones.
type Stack struct {
	core.RenderObjectBase
	Children []core.Widget
}

func (s Stack) ChildWidgets() []core.Widget {
	return s.Children
}

func (s Stack) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	stack := &renderStack{}
	stack.SetSelf(stack)
	return stack
}

func (s Stack) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderStack struct {
	layout.RenderBoxBase
	children []layout.RenderBox
}

func (r *renderStack) SetChildren(children []layout.RenderObject) {
	for _, child := range r.children {
		layout.SetParentOnChild(child, nil)
	}
	r.children = r.children[:0]
	for _, child := range children {
		box := layout.AsRenderBox(child)
		if box == nil {
			continue
		}
		layout.SetParentOnChild(box, r)
		r.children = append(r.children, box)
	}
	r.MarkNeedsLayout()
}

func (r *renderStack) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *renderStack) PerformLayout() {
	constraints := r.Constraints()
	size := graphics.Size{Width: constraints.MinWidth, Height: constraints.MinHeight}
	loose := constraints.Loosen()
	for _, child := range r.children {
		child.Layout(loose, true) // true: we read child.Size()
		child.SetParentData(&layout.BoxParentData{})
		childSize := child.Size()
		if childSize.Width > size.Width {
			size.Width = childSize.Width
		}
		if childSize.Height > size.Height {
			size.Height = childSize.Height
		}
	}
	r.SetSize(constraints.Constrain(size))
}

func (r *renderStack) Paint(ctx *layout.PaintContext) {
	for _, child := range r.children {
		ctx.PaintChild(child, layout.ChildOffset(child))
	}
}
