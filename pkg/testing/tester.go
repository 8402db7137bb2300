package testing

import (
	"testing"

	"github.com/go-drift/viewproxy/pkg/core"
	"github.com/go-drift/viewproxy/pkg/graphics"
	"github.com/go-drift/viewproxy/pkg/layout"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// WidgetTester drives widget trees through full frame cycles without a
// real surface. Each painted frame runs build, layout, the pre-draw
// notification, and paint, in that order, exactly as the headless engine
// does.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	rootRender layout.RenderObject
	size       graphics.Size
	recorder   graphics.Recorder
	lastFrame  graphics.DisplayList
	frames     int
}

// NewWidgetTester creates a tester with the default test surface size.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		buildOwner: core.NewBuildOwner(),
		size:       graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree. Must be called if not using
// NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
		t.rootRender = nil
	}
}

// SetSize sets the logical surface size. Must be called before PumpWidget.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
}

// PumpWidget mounts (or remounts) a widget and runs one full frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
		t.rootRender = nil
	}

	t.root = core.MountRoot(widget, t.buildOwner)
	if renderElement, ok := t.root.(interface{ RenderObject() layout.RenderObject }); ok {
		t.rootRender = renderElement.RenderObject()
	}

	if t.rootRender != nil {
		pipeline := t.buildOwner.Pipeline()
		pipeline.ScheduleLayout(t.rootRender)
		pipeline.SchedulePaint(t.rootRender)
	}

	t.Pump()
}

// Pump runs a single frame cycle: build, layout, pre-draw, paint. A frame
// with no pending paint work skips the draw phase entirely, so pre-draw
// listeners are not notified on idle frames.
func (t *WidgetTester) Pump() {
	t.buildOwner.FlushBuild()

	if t.rootRender == nil {
		return
	}
	pipeline := t.buildOwner.Pipeline()
	pipeline.FlushLayoutForRoot(t.rootRender, layout.Tight(t.size))

	if !pipeline.NeedsPaint() {
		return
	}
	layout.NotifyPreDraw(t.rootRender)
	t.rootRender.Paint(&layout.PaintContext{Canvas: &t.recorder})
	t.lastFrame = t.recorder.Finish()
	pipeline.ClearPaint()
	t.frames++
}

// FramesPainted returns how many frames have actually been drawn.
func (t *WidgetTester) FramesPainted() int {
	return t.frames
}

// LastFrame returns the display list recorded for the most recent
// painted frame.
func (t *WidgetTester) LastFrame() graphics.DisplayList {
	return t.lastFrame
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// RootRenderObject returns the root render object of the mounted tree.
func (t *WidgetTester) RootRenderObject() layout.RenderObject {
	return t.rootRender
}
