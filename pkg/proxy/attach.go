package proxy

import (
	"github.com/go-drift/viewproxy/pkg/core"
	"github.com/go-drift/viewproxy/pkg/graphics"
	"github.com/go-drift/viewproxy/pkg/layout"
)

// Of wraps child so that callback receives the subject envelope - the
// outermost render object representing child - before each draw.
func Of(child core.Widget, callback func(layout.RenderObject)) core.Widget {
	return hostWidget{
		Content: child,
		Marker:  markerWidget{mode: modeSubject, callback: callback},
	}
}

// As is like Of but only fires when the subject envelope has type T.
func As[T layout.RenderObject](child core.Widget, callback func(T)) core.Widget {
	return hostWidget{
		Content: child,
		Marker:  markerWidget{mode: modeSubject, callback: typed(callback)},
	}
}

// To wraps child so that callback receives the render object located by
// the relationship, searched from the subject envelope before each draw.
func To[T layout.RenderObject](child core.Widget, rel Relationship, callback func(T)) core.Widget {
	return hostWidget{
		Content: child,
		Marker:  markerWidget{mode: modeRelationship, rel: rel, callback: typed(callback)},
	}
}

// Global wraps child so that callback receives the named chrome element
// of the window the child is mounted in, before each draw.
func Global(child core.Widget, element GlobalElement, callback func(layout.RenderObject)) core.Widget {
	return hostWidget{
		Content: child,
		Marker:  markerWidget{mode: modeGlobal, global: element, callback: callback},
	}
}

// typed adapts a typed callback to the marker's untyped callback. A
// target of the wrong type is a silent no-op, matching the library's
// find-or-don't contract.
func typed[T layout.RenderObject](fn func(T)) func(layout.RenderObject) {
	return func(view layout.RenderObject) {
		if target, ok := view.(T); ok {
			fn(target)
		}
	}
}

// hostWidget is the wrapper the attach surface generates: its render
// object carries the content subtree plus the hidden marker as a
// trailing sibling.
type hostWidget struct {
	core.RenderObjectBase
	Content core.Widget
	Marker  markerWidget
}

func (h hostWidget) ChildWidgets() []core.Widget {
	return []core.Widget{h.Content, h.Marker}
}

func (h hostWidget) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	host := &renderHost{}
	host.SetSelf(host)
	return host
}

func (h hostWidget) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

// renderHost passes layout and paint through to the content child; the
// marker is laid out to zero size and never painted.
type renderHost struct {
	layout.RenderBoxBase
	children []layout.RenderBox
}

func (r *renderHost) SetChildren(children []layout.RenderObject) {
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

func (r *renderHost) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *renderHost) content() layout.RenderBox {
	for _, child := range r.children {
		if _, ok := child.(*renderMarker); ok {
			continue
		}
		return child
	}
	return nil
}

func (r *renderHost) PerformLayout() {
	constraints := r.Constraints()
	size := constraints.Constrain(graphics.Size{})
	if content := r.content(); content != nil {
		content.Layout(constraints, true) // true: we adopt the content size
		content.SetParentData(&layout.BoxParentData{})
		size = content.Size()
	}
	for _, child := range r.children {
		if marker, ok := child.(*renderMarker); ok {
			marker.Layout(layout.Tight(graphics.Size{}), false)
			marker.SetParentData(&layout.BoxParentData{})
		}
	}
	r.SetSize(size)
}

func (r *renderHost) Paint(ctx *layout.PaintContext) {
	if content := r.content(); content != nil {
		ctx.PaintChild(content, layout.ChildOffset(content))
	}
}
