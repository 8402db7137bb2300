// Package layout provides the retained render tree: box layout,
// paint scheduling, and the pre-draw lifecycle notification that fires
// before each frame is drawn.
package layout

import (
	"fmt"
	"reflect"

	"github.com/go-drift/viewproxy/pkg/graphics"
)

// RenderObject handles layout and painting for one node of the render tree.
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	ParentData() any
	SetParentData(data any)
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
	Parent() RenderObject
	Depth() int
	DebugDescription() string
}

// RenderBox is a RenderObject with box layout.
type RenderBox interface {
	RenderObject
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each child in paint order.
	VisitChildren(visitor func(RenderObject))
}

// PreDrawListener is implemented by render objects that want a synchronous
// callback immediately before the tree they live in is drawn. The callback
// runs on the frame thread with exclusive access to the tree; listeners may
// read and mutate reachable render objects but must not restructure the
// subtree currently being traversed.
type PreDrawListener interface {
	WillDraw()
}

// InspectorHider is implemented by render objects that should be omitted
// from debug snapshots and accessibility output.
type InspectorHider interface {
	HiddenFromInspector() bool
}

// BoxParentData stores the offset for a child in a box layout.
type BoxParentData struct {
	Offset graphics.Offset
}

// RenderBoxBase provides base behavior for render boxes.
type RenderBoxBase struct {
	size        graphics.Size
	parentData  any
	owner       *PipelineOwner
	self        RenderObject
	parent      RenderObject
	depth       int
	needsLayout bool
	constraints Constraints
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize updates the render box size.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// ParentData returns the parent-assigned data for this render box.
func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData assigns parent-controlled data to this render box.
func (r *RenderBoxBase) SetParentData(data any) {
	r.parentData = data
}

// MarkNeedsLayout marks this render box and its ancestors as needing layout.
// The walk stops at the root, which is scheduled with the pipeline owner.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true
	if r.parent != nil {
		r.parent.MarkNeedsLayout()
		return
	}
	if r.owner != nil && r.self != nil {
		r.owner.ScheduleLayout(r.self)
	}
}

// MarkNeedsPaint schedules a repaint of the tree this box belongs to.
func (r *RenderBoxBase) MarkNeedsPaint() {
	if r.parent != nil {
		r.parent.MarkNeedsPaint()
		return
	}
	if r.owner != nil && r.self != nil {
		r.owner.SchedulePaint(r.self)
	}
}

// SetOwner assigns the pipeline owner for scheduling layout and paint.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
}

// SetSelf registers the concrete render object for scheduling and
// debug descriptions.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
}

// Self returns the concrete render object registered via SetSelf.
func (r *RenderBoxBase) Self() RenderObject {
	return r.self
}

// Parent returns the parent render object.
func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// SetParent sets the parent render object and recomputes depth. Cached
// constraints are cleared so a reparented box lays out fresh in its new
// subtree.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	if r.parent == parent {
		return
	}
	r.parent = parent
	if parent == nil {
		r.depth = 0
	} else {
		r.depth = parent.Depth() + 1
	}
	r.constraints = Constraints{}
	r.needsLayout = true
}

// Depth returns the tree depth (root = 0).
func (r *RenderBoxBase) Depth() int {
	return r.depth
}

// NeedsLayout returns true if this render box needs layout.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// Constraints returns the last received constraints.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// DebugDescription returns a textual description of the render object,
// usable for pattern matching when the concrete type is not nameable.
// The default form is "TypeName(WxH)"; render objects can override it to
// expose more state.
func (r *RenderBoxBase) DebugDescription() string {
	name := "RenderBox"
	if r.self != nil {
		name = reflect.TypeOf(r.self).Elem().Name()
	}
	return fmt.Sprintf("%s(%.0fx%.0f)", name, r.size.Width, r.size.Height)
}

// Layout stores constraints, skips clean subtrees, and delegates to the
// concrete implementation's PerformLayout.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	if !r.needsLayout && r.constraints == constraints {
		return
	}
	r.constraints = constraints
	r.needsLayout = false
	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// SetParentOnChild sets the parent reference on a child render object and
// marks both the old and new parent as needing layout when it changes.
func SetParentOnChild(child, parent RenderObject) {
	if child == nil {
		return
	}
	setter, ok := child.(interface{ SetParent(RenderObject) })
	if !ok {
		return
	}
	currentParent := child.Parent()
	if currentParent == parent {
		return
	}
	setter.SetParent(parent)
	if currentParent != nil {
		currentParent.MarkNeedsLayout()
	}
	if parent != nil {
		parent.MarkNeedsLayout()
	}
}

// AsRenderBox converts a RenderObject to a RenderBox.
// Returns nil if the child is nil or not a RenderBox.
func AsRenderBox(child RenderObject) RenderBox {
	box, _ := child.(RenderBox)
	return box
}

// ChildOffset returns the offset stored in a child's BoxParentData, or the
// zero offset when none has been assigned.
func ChildOffset(child RenderObject) graphics.Offset {
	if child == nil {
		return graphics.Offset{}
	}
	if data, ok := child.ParentData().(*BoxParentData); ok {
		return data.Offset
	}
	return graphics.Offset{}
}
