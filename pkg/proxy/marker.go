package proxy

import (
	"github.com/go-drift/viewproxy/pkg/core"
	"github.com/go-drift/viewproxy/pkg/errors"
	"github.com/go-drift/viewproxy/pkg/graphics"
	"github.com/go-drift/viewproxy/pkg/layout"
)

// markerMode selects how the marker resolves its target.
type markerMode int

const (
	// modeSubject delivers the subject envelope itself.
	modeSubject markerMode = iota
	// modeRelationship traverses per the stored relationship.
	modeRelationship
	// modeGlobal resolves a named window chrome element.
	modeGlobal
)

// markerWidget injects the hidden marker render object.
type markerWidget struct {
	core.RenderObjectBase
	mode     markerMode
	rel      Relationship
	global   GlobalElement
	callback func(layout.RenderObject)
}

func (m markerWidget) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	marker := &renderMarker{
		mode:     m.mode,
		rel:      m.rel,
		global:   m.global,
		callback: m.callback,
	}
	marker.SetSelf(marker)
	return marker
}

func (m markerWidget) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if marker, ok := renderObject.(*renderMarker); ok {
		marker.mode = m.mode
		marker.rel = m.rel
		marker.global = m.global
		marker.callback = m.callback
	}
}

// renderMarker is the zero-size render object that rides along with the
// proxied widget. Its insertion point anchors the traversal: the first
// non-nil parent it sees is the wrapper the attach surface generated, and
// the wrapper's parent is the subject envelope.
type renderMarker struct {
	layout.RenderBoxBase
	mode     markerMode
	rel      Relationship
	global   GlobalElement
	callback func(layout.RenderObject)

	// anchor is the first non-nil parent recorded at insertion. It is
	// written exactly once; re-insertions inside the same wrapper are
	// ignored. The subject envelope is re-derived from it on every
	// pre-draw signal rather than cached, since the tree can be rebuilt
	// between frames.
	anchor layout.RenderObject
}

// SetParent is the marker's insertion hook.
func (r *renderMarker) SetParent(parent layout.RenderObject) {
	r.RenderBoxBase.SetParent(parent)
	if r.anchor == nil && parent != nil {
		r.anchor = parent
	}
}

func (r *renderMarker) PerformLayout() {
	r.SetSize(r.Constraints().Constrain(graphics.Size{}))
}

// Paint draws nothing; the marker contributes no visual output.
func (r *renderMarker) Paint(ctx *layout.PaintContext) {}

// HiddenFromInspector keeps the marker out of snapshots and
// accessibility output.
func (r *renderMarker) HiddenFromInspector() bool {
	return true
}

func (r *renderMarker) DebugDescription() string {
	return "ProxyMarker"
}

// WillDraw receives the pre-draw signal. It resolves the subject
// envelope, runs the configured lookup, and invokes the callback at most
// once - all synchronously, before any painting for this frame.
func (r *renderMarker) WillDraw() {
	defer errors.Recover("proxy.WillDraw")

	if r.anchor == nil {
		return
	}
	envelope := r.anchor.Parent()
	if envelope == nil {
		return
	}

	var target layout.RenderObject
	switch r.mode {
	case modeSubject:
		target = envelope
	case modeRelationship:
		target = findRelated(envelope, r.rel, r)
	case modeGlobal:
		target = resolveGlobal(envelope, r.global)
	}
	if target != nil && r.callback != nil {
		r.callback(target)
	}
}

// findRelated locates the view described by rel, starting from the
// subject envelope. skip is excluded from descendant candidacy so the
// marker never matches itself.
func findRelated(envelope layout.RenderObject, rel Relationship, skip layout.RenderObject) layout.RenderObject {
	if rel.relation == RelationAncestor {
		return findAncestor(envelope, rel)
	}
	return findDescendant(envelope, rel, skip)
}

// findAncestor walks upward one parent at a time from the subject
// envelope. Closest stops at the first qualifying ancestor; Furthest
// keeps walking to the root and returns the most distant hit. Hop-count
// strictly increases on the way up, so a later hit is always farther and
// first-found wins ties by construction.
func findAncestor(envelope layout.RenderObject, rel Relationship) layout.RenderObject {
	var furthest layout.RenderObject
	for view := envelope.Parent(); view != nil; view = view.Parent() {
		if !rel.matches(view) {
			continue
		}
		if rel.distance == DistanceClosest {
			return view
		}
		furthest = view
	}
	return furthest
}

// findDescendant runs a depth-first pre-order walk of the subject
// envelope's subtree. Closest stops at the first match. Furthest keeps
// the candidate with the greatest hop-count from the envelope, keeps
// descending through matches (a matching view's subtree can hold a
// deeper match), and keeps the earlier find on equal hop-count. The
// furthest stash is local to this call; state never leaks between
// traversal passes.
func findDescendant(envelope layout.RenderObject, rel Relationship, skip layout.RenderObject) layout.RenderObject {
	closest := rel.distance == DistanceClosest
	var best layout.RenderObject
	bestDepth := 0

	var walk func(view layout.RenderObject, depth int) bool
	walk = func(view layout.RenderObject, depth int) bool {
		if view != skip && rel.matches(view) {
			if closest {
				best = view
				return false
			}
			if best == nil || depth > bestDepth {
				best = view
				bestDepth = depth
			}
		}
		descend := true
		if visitor, ok := view.(layout.ChildVisitor); ok {
			visitor.VisitChildren(func(child layout.RenderObject) {
				if descend {
					descend = walk(child, depth+1)
				}
			})
		}
		return descend
	}

	if visitor, ok := envelope.(layout.ChildVisitor); ok {
		descend := true
		visitor.VisitChildren(func(child layout.RenderObject) {
			if descend {
				descend = walk(child, 1)
			}
		})
	}
	return best
}
