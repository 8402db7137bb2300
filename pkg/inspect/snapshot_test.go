package inspect

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/go-drift/viewproxy/pkg/core"
	"github.com/go-drift/viewproxy/pkg/layout"
	"github.com/go-drift/viewproxy/pkg/proxy"
	proxytest "github.com/go-drift/viewproxy/pkg/testing"
	"github.com/go-drift/viewproxy/pkg/widgets"
)

func TestCaptureTreeShape(t *testing.T) {
	tester := proxytest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Stack{Children: []core.Widget{
		widgets.Text{Content: "left"},
		widgets.Text{Content: "right"},
	}})

	got := Capture(tester.RootRenderObject())
	want := &Node{
		Type: "renderStack",
		Children: []Node{
			{Type: "RenderText", Description: `RenderText("left")`},
			{Type: "RenderText", Description: `RenderText("right")`},
		},
	}

	ignore := cmpopts.IgnoreFields(Node{}, "Width", "Height")
	if diff := cmp.Diff(want.Children, got.Children, ignore); diff != "" {
		t.Errorf("unexpected children (-want +got):\n%s", diff)
	}
	if got.Type != want.Type {
		t.Errorf("expected root type %q, got %q", want.Type, got.Type)
	}
}

func TestCaptureOmitsHiddenRenderObjects(t *testing.T) {
	tester := proxytest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Stack{Children: []core.Widget{
		proxy.Of(widgets.Text{Content: "watched"}, func(layout.RenderObject) {}),
	}})

	snapshot := Capture(tester.RootRenderObject())
	if containsDescription(snapshot, "ProxyMarker") {
		t.Error("expected the proxy marker to stay out of snapshots")
	}
	if !containsDescription(snapshot, `RenderText("watched")`) {
		t.Error("expected the proxied content to stay visible")
	}
}

func TestDumpWritesYAML(t *testing.T) {
	tester := proxytest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Text{Content: "hello"})

	var out strings.Builder
	if err := Dump(&out, tester.RootRenderObject()); err != nil {
		t.Fatal(err)
	}
	dump := out.String()
	for _, want := range []string{"type: RenderText", `description: RenderText("hello")`} {
		if !strings.Contains(dump, want) {
			t.Errorf("expected dump to contain %q:\n%s", want, dump)
		}
	}
}

func containsDescription(node *Node, description string) bool {
	if node == nil {
		return false
	}
	if node.Description == description {
		return true
	}
	for i := range node.Children {
		if containsDescription(&node.Children[i], description) {
			return true
		}
	}
	return false
}
