package core

// StatelessBase provides default CreateElement and Key implementations for
// stateless widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (g Greeting) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: "Hello, " + g.Name}
//	}
type StatelessBase struct{}

// CreateElement returns a new StatelessElement.
func (StatelessBase) CreateElement() Element { return NewStatelessElement() }

// Key returns nil (no key).
func (StatelessBase) Key() any { return nil }

// StatefulBase provides default CreateElement and Key implementations for
// stateful widgets.
type StatefulBase struct{}

// CreateElement returns a new StatefulElement.
func (StatefulBase) CreateElement() Element { return NewStatefulElement() }

// Key returns nil (no key).
func (StatefulBase) Key() any { return nil }

// RenderObjectBase provides default CreateElement and Key implementations
// for render object widgets.
type RenderObjectBase struct{}

// CreateElement returns a new RenderObjectElement.
func (RenderObjectBase) CreateElement() Element { return NewRenderObjectElement() }

// Key returns nil (no key).
func (RenderObjectBase) Key() any { return nil }

// StateBase provides the State plumbing shared by stateful widgets.
// Embed it in your state struct and call SetState to trigger rebuilds.
type StateBase struct {
	element *StatefulElement
}

// SetElement records the hosting element. Called by the framework
// during mount.
func (s *StateBase) SetElement(element *StatefulElement) {
	s.element = element
}

// SetState runs fn and schedules a rebuild of the hosting element.
func (s *StateBase) SetState(fn func()) {
	if fn != nil {
		fn()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// InitState does nothing by default.
func (s *StateBase) InitState() {}

// DidUpdateWidget does nothing by default.
func (s *StateBase) DidUpdateWidget(_ StatefulWidget) {}

// Dispose does nothing by default.
func (s *StateBase) Dispose() {}

// MountRoot inflates a widget as the root of a new element tree.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := inflateWidget(widget, owner)
	element.Mount(nil, nil)
	return element
}
