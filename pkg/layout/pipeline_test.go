package layout

import (
	"reflect"
	"testing"
)

type preDrawProbe struct {
	RenderBoxBase
	name     string
	log      *[]string
	children []RenderObject
}

func newPreDrawProbe(name string, log *[]string, children ...RenderObject) *preDrawProbe {
	probe := &preDrawProbe{name: name, log: log, children: children}
	probe.SetSelf(probe)
	for _, child := range children {
		SetParentOnChild(child, probe)
	}
	return probe
}

func (p *preDrawProbe) Paint(ctx *PaintContext) {}

func (p *preDrawProbe) WillDraw() {
	*p.log = append(*p.log, p.name)
}

func (p *preDrawProbe) VisitChildren(visitor func(RenderObject)) {
	for _, child := range p.children {
		visitor(child)
	}
}

func TestNotifyPreDrawPreOrder(t *testing.T) {
	var log []string
	root := newPreDrawProbe("root", &log,
		newPreDrawProbe("a", &log, newPreDrawProbe("b", &log)),
		newPreDrawProbe("c", &log),
	)

	NotifyPreDraw(root)

	want := []string{"root", "a", "b", "c"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("expected pre-order %v, got %v", want, log)
	}
}

func TestNotifyPreDrawNilRoot(t *testing.T) {
	NotifyPreDraw(nil) // must not panic
}

func TestSchedulePaintTracksDirtyState(t *testing.T) {
	var log []string
	root := newPreDrawProbe("root", &log)

	var pipeline PipelineOwner
	if pipeline.NeedsPaint() {
		t.Error("expected a fresh pipeline to have no paint work")
	}

	pipeline.SchedulePaint(root)
	if !pipeline.NeedsPaint() {
		t.Error("expected paint work after SchedulePaint")
	}

	pipeline.ClearPaint()
	if pipeline.NeedsPaint() {
		t.Error("expected no paint work after ClearPaint")
	}
}

func TestScheduleLayoutImpliesPaint(t *testing.T) {
	var log []string
	root := newPreDrawProbe("root", &log)

	var pipeline PipelineOwner
	pipeline.ScheduleLayout(root)
	if !pipeline.NeedsLayout() {
		t.Error("expected layout work after ScheduleLayout")
	}
	if !pipeline.NeedsPaint() {
		t.Error("expected a laid-out frame to also repaint")
	}
}
