// Package core provides the widget and element framework that inflates
// declarative widget values into the retained render tree.
package core

import "github.com/go-drift/viewproxy/pkg/layout"

// Widget is an immutable description of part of the user interface.
type Widget interface {
	CreateElement() Element
	Key() any
}

// StatelessWidget builds its subtree purely from its own fields.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget creates mutable State that persists across rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// RenderObjectWidget creates a render object directly.
type RenderObjectWidget interface {
	Widget
	CreateRenderObject(ctx BuildContext) layout.RenderObject
	UpdateRenderObject(ctx BuildContext, renderObject layout.RenderObject)
}

// State holds mutable data for a StatefulWidget.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	DidUpdateWidget(old StatefulWidget)
	Dispose()
}

// Element is an instantiation of a Widget at a position in the tree.
type Element interface {
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
	Widget() Widget
	Depth() int
	MarkNeedsBuild()
}

// BuildContext is the element-side handle passed to Build methods.
type BuildContext interface {
	Widget() Widget
	FindAncestor(predicate func(Element) bool) Element
}
