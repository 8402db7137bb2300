package proxy

import (
	"strings"
	"testing"

	"github.com/go-drift/viewproxy/pkg/core"
	"github.com/go-drift/viewproxy/pkg/layout"
	proxytest "github.com/go-drift/viewproxy/pkg/testing"
	"github.com/go-drift/viewproxy/pkg/widgets"
)

func TestGlobalResolvesFullChrome(t *testing.T) {
	tester := proxytest.NewWidgetTesterWithT(t)

	resolved := map[GlobalElement]layout.RenderObject{}
	content := core.Widget(widgets.Text{Content: "body"})
	for _, element := range []GlobalElement{
		GlobalWindow, GlobalContentView, GlobalTitlebar,
		GlobalTitlebarContainer, GlobalTabBar, GlobalToolbar, GlobalCurrentTab,
	} {
		element := element
		content = Global(content, element, func(view layout.RenderObject) {
			resolved[element] = view
		})
	}

	tester.PumpWidget(widgets.Window{
		Title:     "Editor",
		Toolbar:   true,
		Tabs:      []string{"main.go", "main_test.go"},
		ActiveTab: 1,
		Child:     content,
	})

	for _, element := range []GlobalElement{
		GlobalWindow, GlobalContentView, GlobalTitlebar,
		GlobalTitlebarContainer, GlobalTabBar, GlobalToolbar, GlobalCurrentTab,
	} {
		if resolved[element] == nil {
			t.Errorf("%s: expected a resolved render object", element)
		}
	}

	if bar, ok := resolved[GlobalTitlebar].(*widgets.RenderTitlebar); !ok {
		t.Errorf("titlebar: expected *widgets.RenderTitlebar, got %T", resolved[GlobalTitlebar])
	} else if bar.Title() != "Editor" {
		t.Errorf("titlebar: expected title %q, got %q", "Editor", bar.Title())
	}
	if _, ok := resolved[GlobalToolbar].(*widgets.RenderToolbar); !ok {
		t.Errorf("toolbar: expected *widgets.RenderToolbar, got %T", resolved[GlobalToolbar])
	}
	if _, ok := resolved[GlobalWindow].(widgets.WindowHost); !ok {
		t.Errorf("window: expected a WindowHost, got %T", resolved[GlobalWindow])
	}
	if tab := resolved[GlobalCurrentTab]; tab != nil {
		desc := tab.DebugDescription()
		if !strings.Contains(desc, `"main_test.go"`) || !strings.Contains(desc, "selected=true") {
			t.Errorf("currentTab: expected the selected tab, got %s", desc)
		}
	}
}

func TestGlobalSkipsAbsentChrome(t *testing.T) {
	tester := proxytest.NewWidgetTesterWithT(t)

	toolbarFired := false
	tabBarFired := false
	currentTabFired := false
	var titlebar layout.RenderObject

	content := Global(
		Global(
			Global(
				Global(
					widgets.Text{Content: "plain"},
					GlobalTitlebar, func(view layout.RenderObject) { titlebar = view },
				),
				GlobalToolbar, func(layout.RenderObject) { toolbarFired = true },
			),
			GlobalTabBar, func(layout.RenderObject) { tabBarFired = true },
		),
		GlobalCurrentTab, func(layout.RenderObject) { currentTabFired = true },
	)

	tester.PumpWidget(widgets.Window{Title: "Plain", Child: content})

	if titlebar == nil {
		t.Error("expected the titlebar to resolve")
	}
	if toolbarFired || tabBarFired || currentTabFired {
		t.Error("expected no callbacks for chrome the window does not have")
	}
}

func TestGlobalOutsideWindowIsNoOp(t *testing.T) {
	tester := proxytest.NewWidgetTesterWithT(t)

	fired := false
	tester.PumpWidget(tagBox{Tag: "root", Child: Global(
		widgets.Text{Content: "orphan"},
		GlobalWindow, func(layout.RenderObject) { fired = true },
	)})

	if fired {
		t.Error("expected no window resolution outside a window")
	}
}
