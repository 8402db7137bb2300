package widgets

import (
	"strings"
	"testing"

	"github.com/go-drift/viewproxy/pkg/layout"
	proxytest "github.com/go-drift/viewproxy/pkg/testing"
)

func findRender(root layout.RenderObject, predicate func(layout.RenderObject) bool) layout.RenderObject {
	if root == nil {
		return nil
	}
	if predicate(root) {
		return root
	}
	var found layout.RenderObject
	if visitor, ok := root.(layout.ChildVisitor); ok {
		visitor.VisitChildren(func(child layout.RenderObject) {
			if found == nil {
				found = findRender(child, predicate)
			}
		})
	}
	return found
}

func TestWindowBuildsChromeTree(t *testing.T) {
	tester := proxytest.NewWidgetTesterWithT(t)
	tester.PumpWidget(Window{
		Title:     "Console",
		Toolbar:   true,
		Tabs:      []string{"one", "two"},
		ActiveTab: 0,
		Child:     Text{Content: "body"},
	})

	root := tester.RootRenderObject()
	host, ok := root.(WindowHost)
	if !ok {
		t.Fatalf("expected the window root to implement WindowHost, got %T", root)
	}

	titlebar, ok := findRender(root, func(view layout.RenderObject) bool {
		_, isTitlebar := view.(*RenderTitlebar)
		return isTitlebar
	}).(*RenderTitlebar)
	if !ok {
		t.Fatal("expected a titlebar in the chrome subtree")
	}
	if titlebar.Title() != "Console" {
		t.Errorf("expected title %q, got %q", "Console", titlebar.Title())
	}

	if found := findRender(root, func(view layout.RenderObject) bool {
		_, isToolbar := view.(*RenderToolbar)
		return isToolbar
	}); found == nil {
		t.Error("expected a toolbar in the chrome subtree")
	}

	tabBar := findRender(root, func(view layout.RenderObject) bool {
		return strings.HasPrefix(view.DebugDescription(), "WindowTabBar(")
	})
	if tabBar == nil {
		t.Fatal("expected a tab bar in the chrome subtree")
	}
	if desc := tabBar.DebugDescription(); desc != "WindowTabBar(2 tabs)" {
		t.Errorf("unexpected tab bar description %q", desc)
	}

	if host.ContentView() == nil {
		t.Error("expected a content view")
	}
	if host.TitlebarContainer() == nil {
		t.Error("expected a titlebar container")
	}
}

func TestWindowContentSitsBelowChrome(t *testing.T) {
	tester := proxytest.NewWidgetTesterWithT(t)
	tester.PumpWidget(Window{
		Title:   "Sized",
		Toolbar: true,
		Tabs:    []string{"only"},
		Child:   Text{Content: "body"},
	})

	root := tester.RootRenderObject()
	host := root.(WindowHost)

	content := host.ContentView()
	wantChrome := float64(titlebarHeight + toolbarHeight + tabBarHeight)
	if offset := layout.ChildOffset(content); offset.Y != wantChrome {
		t.Errorf("expected content offset %v, got %v", wantChrome, offset.Y)
	}
	if size := content.Size(); size.Height != proxytest.DefaultTestHeight-wantChrome {
		t.Errorf("expected content height %v, got %v", proxytest.DefaultTestHeight-wantChrome, size.Height)
	}
}

func TestWindowWithoutOptionalChrome(t *testing.T) {
	tester := proxytest.NewWidgetTesterWithT(t)
	tester.PumpWidget(Window{Title: "Bare", Child: Text{Content: "body"}})

	root := tester.RootRenderObject()
	if found := findRender(root, func(view layout.RenderObject) bool {
		_, isToolbar := view.(*RenderToolbar)
		return isToolbar
	}); found != nil {
		t.Error("expected no toolbar without Toolbar: true")
	}
	if found := findRender(root, func(view layout.RenderObject) bool {
		return strings.HasPrefix(view.DebugDescription(), "WindowTabBar(")
	}); found != nil {
		t.Error("expected no tab bar without Tabs")
	}
}

func TestTitlebarSetTitle(t *testing.T) {
	tester := proxytest.NewWidgetTesterWithT(t)
	tester.PumpWidget(Window{Title: "Before", Child: Text{Content: "body"}})

	titlebar := findRender(tester.RootRenderObject(), func(view layout.RenderObject) bool {
		_, ok := view.(*RenderTitlebar)
		return ok
	}).(*RenderTitlebar)

	titlebar.SetTitle("After")
	if titlebar.Title() != "After" {
		t.Errorf("expected title %q, got %q", "After", titlebar.Title())
	}
	if titlebar.DebugDescription() != `WindowTitlebar("After")` {
		t.Errorf("unexpected description %q", titlebar.DebugDescription())
	}
}
