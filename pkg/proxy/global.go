package proxy

import (
	"github.com/go-drift/viewproxy/pkg/layout"
	"github.com/go-drift/viewproxy/pkg/widgets"
)

// GlobalElement names a window-level chrome element for one-shot lookup.
type GlobalElement int

const (
	// GlobalWindow is the window's own render object.
	GlobalWindow GlobalElement = iota
	// GlobalContentView is the render object hosting the window content.
	GlobalContentView
	// GlobalTitlebar is the titlebar row.
	GlobalTitlebar
	// GlobalTitlebarContainer holds the titlebar, toolbar, and tab bar.
	GlobalTitlebarContainer
	// GlobalTabBar is the window tab bar, located by description pattern
	// because its concrete type is not exported.
	GlobalTabBar
	// GlobalToolbar is the toolbar row.
	GlobalToolbar
	// GlobalCurrentTab is the selected tab in the window tab bar.
	GlobalCurrentTab
)

func (g GlobalElement) String() string {
	switch g {
	case GlobalWindow:
		return "window"
	case GlobalContentView:
		return "contentView"
	case GlobalTitlebar:
		return "titlebar"
	case GlobalTitlebarContainer:
		return "titlebarContainer"
	case GlobalTabBar:
		return "tabBar"
	case GlobalToolbar:
		return "toolbar"
	case GlobalCurrentTab:
		return "currentTab"
	default:
		return "unknown"
	}
}

// Chrome lookup rules. The tab bar and its tabs are matched against
// debug descriptions; their render types are unexported, standing in for
// chrome whose type is not part of the public platform interface.
var (
	titlebarRel   = Descendant[*widgets.RenderTitlebar]()
	toolbarRel    = Descendant[*widgets.RenderToolbar]()
	tabBarRel     = DescendantLike[layout.RenderObject](`^WindowTabBar\(`)
	currentTabRel = DescendantLike[layout.RenderObject](`^WindowTab\(.* selected=true\)`)
)

// resolveGlobal locates a named chrome element through the window that
// owns the subject envelope. Every miss - no enclosing window, chrome
// element not present - returns nil rather than an error.
func resolveGlobal(envelope layout.RenderObject, element GlobalElement) layout.RenderObject {
	window := windowOf(envelope)
	if window == nil {
		return nil
	}
	switch element {
	case GlobalWindow:
		return window
	case GlobalContentView:
		return window.ContentView()
	case GlobalTitlebarContainer:
		return window.TitlebarContainer()
	case GlobalTitlebar:
		return findInChrome(window, titlebarRel)
	case GlobalToolbar:
		return findInChrome(window, toolbarRel)
	case GlobalTabBar:
		return findInChrome(window, tabBarRel)
	case GlobalCurrentTab:
		tabBar := findInChrome(window, tabBarRel)
		if tabBar == nil {
			return nil
		}
		return findDescendant(tabBar, currentTabRel, nil)
	default:
		return nil
	}
}

// windowOf walks upward from a view to the window hosting it, the way a
// native view reaches its window. Returns nil when the view is not
// mounted under a window.
func windowOf(view layout.RenderObject) widgets.WindowHost {
	for current := view; current != nil; current = current.Parent() {
		if host, ok := current.(widgets.WindowHost); ok {
			return host
		}
	}
	return nil
}

func findInChrome(window widgets.WindowHost, rel Relationship) layout.RenderObject {
	container := window.TitlebarContainer()
	if container == nil {
		return nil
	}
	return findDescendant(container, rel, nil)
}
