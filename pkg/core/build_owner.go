package core

import (
	"slices"
	"sync"

	"github.com/go-drift/viewproxy/pkg/layout"
)

// BuildOwner tracks dirty elements that need rebuilding.
type BuildOwner struct {
	dirty    []Element
	dirtySet map[Element]bool
	pipeline *layout.PipelineOwner
	mu       sync.Mutex
}

// NewBuildOwner creates a new BuildOwner with its own pipeline.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{
		pipeline: &layout.PipelineOwner{},
	}
}

// Pipeline returns the PipelineOwner for render object scheduling.
func (b *BuildOwner) Pipeline() *layout.PipelineOwner {
	return b.pipeline
}

// ScheduleBuild marks an element as needing rebuild.
func (b *BuildOwner) ScheduleBuild(element Element) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dirtySet[element] {
		return
	}
	if b.dirtySet == nil {
		b.dirtySet = make(map[Element]bool)
	}
	b.dirtySet[element] = true
	b.dirty = append(b.dirty, element)
}

// NeedsWork returns true if there are dirty elements or pending
// layout/paint.
func (b *BuildOwner) NeedsWork() bool {
	b.mu.Lock()
	hasDirty := len(b.dirty) > 0
	b.mu.Unlock()
	if hasDirty {
		return true
	}
	return b.pipeline.NeedsLayout() || b.pipeline.NeedsPaint()
}

// FlushBuild rebuilds all dirty elements in depth order.
func (b *BuildOwner) FlushBuild() {
	for {
		b.mu.Lock()
		if len(b.dirty) == 0 {
			b.mu.Unlock()
			return
		}

		slices.SortFunc(b.dirty, func(a, b Element) int {
			return a.Depth() - b.Depth()
		})

		dirty := b.dirty
		b.dirty = nil
		clear(b.dirtySet)
		b.mu.Unlock()

		for _, element := range dirty {
			if mountable, ok := element.(interface{ isMounted() bool }); ok && !mountable.isMounted() {
				continue
			}
			element.RebuildIfNeeded()
		}
	}
}
