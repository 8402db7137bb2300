package layout

// PipelineOwner tracks render trees that need layout or paint.
//
// Dirty tracking is root-based: MarkNeedsLayout and MarkNeedsPaint walk up
// to the root of their tree and schedule it here. The frame driver then
// flushes layout from the root, delivers the pre-draw notification, and
// paints.
type PipelineOwner struct {
	dirtyLayout map[RenderObject]struct{}
	dirtyPaint  map[RenderObject]struct{}
	needsLayout bool
	needsPaint  bool
}

// ScheduleLayout marks a root render object as needing layout.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if p.dirtyLayout == nil {
		p.dirtyLayout = make(map[RenderObject]struct{})
	}
	p.dirtyLayout[object] = struct{}{}
	p.needsLayout = true
	p.needsPaint = true
}

// SchedulePaint marks a root render object as needing paint.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	if p.dirtyPaint == nil {
		p.dirtyPaint = make(map[RenderObject]struct{})
	}
	p.dirtyPaint[object] = struct{}{}
	p.needsPaint = true
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.needsPaint
}

// FlushLayoutForRoot runs layout starting from the root.
//
// The frame sequence is:
//  1. FlushBuild - rebuilds dirty elements, updates render object properties
//  2. FlushLayoutForRoot - lays out from the root
//  3. NotifyPreDraw - delivers the pre-draw signal, top-down
//  4. Paint - records the frame
//
// Layout starts at the root with tight constraints. Nodes marked via
// MarkNeedsLayout run PerformLayout; clean nodes with unchanged
// constraints skip layout entirely.
func (p *PipelineOwner) FlushLayoutForRoot(root RenderObject, constraints Constraints) {
	if !p.needsLayout || root == nil {
		return
	}
	root.Layout(constraints, false)
	p.dirtyLayout = nil
	p.needsLayout = false
}

// ClearPaint marks all scheduled paint work as done.
// The frame driver calls this after recording the frame.
func (p *PipelineOwner) ClearPaint() {
	p.dirtyPaint = nil
	p.needsPaint = false
}

// NotifyPreDraw walks the tree rooted at root in depth-first pre-order,
// invoking WillDraw on every render object that implements
// PreDrawListener. The frame driver calls this exactly once per real draw
// cycle, after layout and before any painting, so listeners observe the
// laid-out tree and may mutate it before the first pixel is recorded.
func NotifyPreDraw(root RenderObject) {
	if root == nil {
		return
	}
	if listener, ok := root.(PreDrawListener); ok {
		listener.WillDraw()
	}
	if visitor, ok := root.(ChildVisitor); ok {
		visitor.VisitChildren(func(child RenderObject) {
			NotifyPreDraw(child)
		})
	}
}
