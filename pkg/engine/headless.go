// Package engine provides a headless frame driver. It owns the mounted
// widget tree and runs the frame pipeline on demand: build, layout, the
// pre-draw notification, and paint into a recorded display list. There is
// no platform surface; the recorded frames are the output.
package engine

import (
	"sync"

	"github.com/go-drift/viewproxy/pkg/core"
	"github.com/go-drift/viewproxy/pkg/errors"
	"github.com/go-drift/viewproxy/pkg/graphics"
	"github.com/go-drift/viewproxy/pkg/layout"
)

// Headless drives frames for a single mounted widget tree.
type Headless struct {
	mu         sync.Mutex
	buildOwner *core.BuildOwner
	root       core.Element
	rootRender layout.RenderObject
	size       graphics.Size
	recorder   graphics.Recorder
}

// NewHeadless creates a driver with the given logical surface size.
func NewHeadless(size graphics.Size) *Headless {
	return &Headless{
		buildOwner: core.NewBuildOwner(),
		size:       size,
	}
}

// Mount attaches the root widget. Any previously mounted tree is
// unmounted first.
func (h *Headless) Mount(widget core.Widget) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.unmountLocked()
	h.root = core.MountRoot(widget, h.buildOwner)
	if renderElement, ok := h.root.(interface{ RenderObject() layout.RenderObject }); ok {
		h.rootRender = renderElement.RenderObject()
	}
	if h.rootRender != nil {
		pipeline := h.buildOwner.Pipeline()
		pipeline.ScheduleLayout(h.rootRender)
		pipeline.SchedulePaint(h.rootRender)
	}
}

// PumpFrame runs one frame cycle and returns the recorded display list.
// The second result is false when nothing needed painting, in which case
// the pre-draw notification is not delivered and the display list is
// empty.
func (h *Headless) PumpFrame() (graphics.DisplayList, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	defer errors.Recover("engine.PumpFrame")

	h.buildOwner.FlushBuild()
	if h.rootRender == nil {
		return graphics.DisplayList{}, false
	}

	pipeline := h.buildOwner.Pipeline()
	pipeline.FlushLayoutForRoot(h.rootRender, layout.Tight(h.size))
	if !pipeline.NeedsPaint() {
		return graphics.DisplayList{}, false
	}

	layout.NotifyPreDraw(h.rootRender)
	h.rootRender.Paint(&layout.PaintContext{Canvas: &h.recorder})
	pipeline.ClearPaint()
	return h.recorder.Finish(), true
}

// RootRenderObject returns the root of the render tree, or nil before
// Mount.
func (h *Headless) RootRenderObject() layout.RenderObject {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rootRender
}

// Unmount tears down the mounted tree.
func (h *Headless) Unmount() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.unmountLocked()
}

func (h *Headless) unmountLocked() {
	if h.root != nil {
		h.root.Unmount()
		h.root = nil
		h.rootRender = nil
	}
}
