package engine

import (
	"testing"

	"github.com/go-drift/viewproxy/pkg/graphics"
	"github.com/go-drift/viewproxy/pkg/widgets"
)

func TestPumpFramePaintsOnce(t *testing.T) {
	driver := NewHeadless(graphics.Size{Width: 320, Height: 240})
	defer driver.Unmount()

	driver.Mount(widgets.Text{Content: "frame"})

	frame, painted := driver.PumpFrame()
	if !painted {
		t.Fatal("expected the first frame to paint")
	}
	if len(frame.Ops) == 0 {
		t.Error("expected recorded drawing commands")
	}

	if _, painted := driver.PumpFrame(); painted {
		t.Error("expected an idle frame to skip painting")
	}
}

func TestPumpFrameWithoutMount(t *testing.T) {
	driver := NewHeadless(graphics.Size{Width: 100, Height: 100})
	if _, painted := driver.PumpFrame(); painted {
		t.Error("expected no paint output before Mount")
	}
}

func TestRemountResetsTree(t *testing.T) {
	driver := NewHeadless(graphics.Size{Width: 100, Height: 100})
	defer driver.Unmount()

	driver.Mount(widgets.Text{Content: "first"})
	driver.PumpFrame()
	first := driver.RootRenderObject()

	driver.Mount(widgets.Text{Content: "second"})
	driver.PumpFrame()
	second := driver.RootRenderObject()

	if first == second {
		t.Error("expected a fresh render tree after remount")
	}
}
