package widgets

import (
	"fmt"

	"github.com/go-drift/viewproxy/pkg/core"
	"github.com/go-drift/viewproxy/pkg/graphics"
	"github.com/go-drift/viewproxy/pkg/layout"
)

// Window chrome metrics, in logical pixels.
const (
	titlebarHeight = 28
	toolbarHeight  = 38
	tabBarHeight   = 24
	tabWidth       = 120
)

// Window hosts a content subtree underneath desktop-style window chrome:
// a titlebar container holding the titlebar, an optional toolbar, and an
// optional tab bar. The chrome subtree is what the proxy's global element
// lookups resolve against.
type Window struct {
	core.StatelessBase
	Title     string
	Toolbar   bool
	Tabs      []string
	ActiveTab int
	Child     core.Widget
}

func (w Window) Build(ctx core.BuildContext) core.Widget {
	return windowRoot{
		Chrome: titlebarChrome{
			Title:     w.Title,
			Toolbar:   w.Toolbar,
			Tabs:      w.Tabs,
			ActiveTab: w.ActiveTab,
		},
		Content: contentHost{Child: w.Child},
	}
}

// WindowHost is implemented by the window's render object. The proxy
// package resolves global elements through it, the way a native view
// reaches its window.
type WindowHost interface {
	layout.RenderObject
	// ContentView returns the render object hosting the window content.
	ContentView() layout.RenderObject
	// TitlebarContainer returns the render object holding the titlebar,
	// toolbar, and tab bar.
	TitlebarContainer() layout.RenderObject
}

type windowRoot struct {
	core.RenderObjectBase
	Chrome  core.Widget
	Content core.Widget
}

func (w windowRoot) ChildWidgets() []core.Widget {
	return []core.Widget{w.Chrome, w.Content}
}

func (w windowRoot) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	window := &renderWindow{}
	window.SetSelf(window)
	return window
}

func (w windowRoot) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderWindow struct {
	layout.RenderBoxBase
	children []layout.RenderBox
}

func (r *renderWindow) SetChildren(children []layout.RenderObject) {
	for _, child := range r.children {
		layout.SetParentOnChild(child, nil)
	}
	r.children = r.children[:0]
	for _, child := range children {
		box := layout.AsRenderBox(child)
		if box == nil {
			continue
		}
		layout.SetParentOnChild(box, r)
		r.children = append(r.children, box)
	}
	r.MarkNeedsLayout()
}

func (r *renderWindow) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

// ContentView returns the render object hosting the window content.
func (r *renderWindow) ContentView() layout.RenderObject {
	for _, child := range r.children {
		if _, ok := child.(*renderContentView); ok {
			return child
		}
	}
	return nil
}

// TitlebarContainer returns the chrome container render object.
func (r *renderWindow) TitlebarContainer() layout.RenderObject {
	for _, child := range r.children {
		if _, ok := child.(*RenderTitlebarContainer); ok {
			return child
		}
	}
	return nil
}

func (r *renderWindow) PerformLayout() {
	constraints := r.Constraints()
	size := graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight}
	r.SetSize(size)

	chromeHeight := 0.0
	if chrome := layout.AsRenderBox(r.TitlebarContainer()); chrome != nil {
		chrome.Layout(layout.Constraints{
			MinWidth:  size.Width,
			MaxWidth:  size.Width,
			MaxHeight: size.Height,
		}, true) // true: we read the chrome height
		chrome.SetParentData(&layout.BoxParentData{})
		chromeHeight = chrome.Size().Height
	}
	if content := layout.AsRenderBox(r.ContentView()); content != nil {
		content.Layout(layout.Tight(graphics.Size{
			Width:  size.Width,
			Height: max(0, size.Height-chromeHeight),
		}), false)
		content.SetParentData(&layout.BoxParentData{
			Offset: graphics.Offset{Y: chromeHeight},
		})
	}
}

func (r *renderWindow) Paint(ctx *layout.PaintContext) {
	ctx.Canvas.FillRect(graphics.RectFromLTWH(0, 0, r.Size().Width, r.Size().Height), graphics.White)
	for _, child := range r.children {
		ctx.PaintChild(child, layout.ChildOffset(child))
	}
}

// titlebarChrome builds the titlebar container subtree.
type titlebarChrome struct {
	core.RenderObjectBase
	Title     string
	Toolbar   bool
	Tabs      []string
	ActiveTab int
}

func (t titlebarChrome) ChildWidgets() []core.Widget {
	children := []core.Widget{titlebarStrip{Title: t.Title}}
	if t.Toolbar {
		children = append(children, toolbarStrip{})
	}
	if len(t.Tabs) > 0 {
		children = append(children, tabBarStrip{Tabs: t.Tabs, ActiveTab: t.ActiveTab})
	}
	return children
}

func (t titlebarChrome) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	container := &RenderTitlebarContainer{}
	container.SetSelf(container)
	return container
}

func (t titlebarChrome) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

// RenderTitlebarContainer stacks the titlebar, toolbar, and tab bar
// vertically. It is exported so callers can target it with typed proxy
// relationships.
type RenderTitlebarContainer struct {
	layout.RenderBoxBase
	children []layout.RenderBox
}

func (r *RenderTitlebarContainer) SetChildren(children []layout.RenderObject) {
	for _, child := range r.children {
		layout.SetParentOnChild(child, nil)
	}
	r.children = r.children[:0]
	for _, child := range children {
		box := layout.AsRenderBox(child)
		if box == nil {
			continue
		}
		layout.SetParentOnChild(box, r)
		r.children = append(r.children, box)
	}
	r.MarkNeedsLayout()
}

func (r *RenderTitlebarContainer) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *RenderTitlebarContainer) PerformLayout() {
	constraints := r.Constraints()
	width := constraints.MaxWidth
	y := 0.0
	for _, child := range r.children {
		child.Layout(layout.Constraints{
			MinWidth: width,
			MaxWidth: width,
		}, true) // true: we read each strip's height
		child.SetParentData(&layout.BoxParentData{Offset: graphics.Offset{Y: y}})
		y += child.Size().Height
	}
	r.SetSize(constraints.Constrain(graphics.Size{Width: width, Height: y}))
}

func (r *RenderTitlebarContainer) Paint(ctx *layout.PaintContext) {
	for _, child := range r.children {
		ctx.PaintChild(child, layout.ChildOffset(child))
	}
}

// titlebarStrip renders the window title row.
type titlebarStrip struct {
	core.RenderObjectBase
	Title string
}

func (t titlebarStrip) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	bar := &RenderTitlebar{title: t.Title}
	bar.SetSelf(bar)
	return bar
}

func (t titlebarStrip) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if bar, ok := renderObject.(*RenderTitlebar); ok {
		bar.SetTitle(t.Title)
	}
}

// RenderTitlebar is the render object backing the titlebar row. It is
// exported so callers can target it with typed proxy relationships.
type RenderTitlebar struct {
	layout.RenderBoxBase
	title string
}

// Title returns the displayed window title.
func (r *RenderTitlebar) Title() string {
	return r.title
}

// SetTitle replaces the displayed window title.
func (r *RenderTitlebar) SetTitle(title string) {
	if r.title == title {
		return
	}
	r.title = title
	r.MarkNeedsPaint()
}

func (r *RenderTitlebar) PerformLayout() {
	constraints := r.Constraints()
	r.SetSize(constraints.Constrain(graphics.Size{
		Width:  constraints.MaxWidth,
		Height: titlebarHeight,
	}))
}

func (r *RenderTitlebar) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	ctx.Canvas.FillRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), graphics.LightGray)
	title := graphics.MeasureText(r.title)
	ctx.Canvas.DrawText(r.title, graphics.Offset{
		X: (size.Width - title.Width) / 2,
		Y: (size.Height-title.Height)/2 + graphics.TextBaseline(),
	}, graphics.Black)
}

// DebugDescription includes the title for pattern-based lookups.
func (r *RenderTitlebar) DebugDescription() string {
	return fmt.Sprintf("WindowTitlebar(%q)", r.title)
}

// toolbarStrip renders the toolbar row.
type toolbarStrip struct {
	core.RenderObjectBase
}

func (t toolbarStrip) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	bar := &RenderToolbar{}
	bar.SetSelf(bar)
	return bar
}

func (t toolbarStrip) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

// RenderToolbar is the render object backing the toolbar row. It is
// exported so callers can target it with typed proxy relationships.
type RenderToolbar struct {
	layout.RenderBoxBase
}

func (r *RenderToolbar) PerformLayout() {
	constraints := r.Constraints()
	r.SetSize(constraints.Constrain(graphics.Size{
		Width:  constraints.MaxWidth,
		Height: toolbarHeight,
	}))
}

func (r *RenderToolbar) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	ctx.Canvas.FillRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), graphics.Gray)
}

// tabBarStrip renders the window tab bar. Its render object type is
// deliberately unexported; the proxy locates it by description pattern,
// mirroring chrome whose type is not part of the public interface.
type tabBarStrip struct {
	core.RenderObjectBase
	Tabs      []string
	ActiveTab int
}

func (t tabBarStrip) ChildWidgets() []core.Widget {
	children := make([]core.Widget, len(t.Tabs))
	for i, label := range t.Tabs {
		children[i] = tabStrip{Label: label, Selected: i == t.ActiveTab}
	}
	return children
}

func (t tabBarStrip) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	bar := &renderTabBar{}
	bar.SetSelf(bar)
	return bar
}

func (t tabBarStrip) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderTabBar struct {
	layout.RenderBoxBase
	tabs []layout.RenderBox
}

func (r *renderTabBar) SetChildren(children []layout.RenderObject) {
	for _, tab := range r.tabs {
		layout.SetParentOnChild(tab, nil)
	}
	r.tabs = r.tabs[:0]
	for _, child := range children {
		box := layout.AsRenderBox(child)
		if box == nil {
			continue
		}
		layout.SetParentOnChild(box, r)
		r.tabs = append(r.tabs, box)
	}
	r.MarkNeedsLayout()
}

func (r *renderTabBar) VisitChildren(visitor func(layout.RenderObject)) {
	for _, tab := range r.tabs {
		visitor(tab)
	}
}

func (r *renderTabBar) PerformLayout() {
	constraints := r.Constraints()
	x := 0.0
	for _, tab := range r.tabs {
		tab.Layout(layout.Tight(graphics.Size{Width: tabWidth, Height: tabBarHeight}), false)
		tab.SetParentData(&layout.BoxParentData{Offset: graphics.Offset{X: x}})
		x += tabWidth
	}
	r.SetSize(constraints.Constrain(graphics.Size{
		Width:  constraints.MaxWidth,
		Height: tabBarHeight,
	}))
}

func (r *renderTabBar) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	ctx.Canvas.FillRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), graphics.LightGray)
	for _, tab := range r.tabs {
		ctx.PaintChild(tab, layout.ChildOffset(tab))
	}
}

func (r *renderTabBar) DebugDescription() string {
	return fmt.Sprintf("WindowTabBar(%d tabs)", len(r.tabs))
}

type tabStrip struct {
	core.RenderObjectBase
	Label    string
	Selected bool
}

func (t tabStrip) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	tab := &renderTab{label: t.Label, selected: t.Selected}
	tab.SetSelf(tab)
	return tab
}

func (t tabStrip) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if tab, ok := renderObject.(*renderTab); ok {
		tab.label = t.Label
		tab.selected = t.Selected
		tab.MarkNeedsPaint()
	}
}

type renderTab struct {
	layout.RenderBoxBase
	label    string
	selected bool
}

func (r *renderTab) PerformLayout() {
	r.SetSize(r.Constraints().Constrain(graphics.Size{Width: tabWidth, Height: tabBarHeight}))
}

func (r *renderTab) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	fill := graphics.LightGray
	if r.selected {
		fill = graphics.White
	}
	ctx.Canvas.FillRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), fill)
	ctx.Canvas.DrawText(r.label, graphics.Offset{X: 8, Y: graphics.TextBaseline()}, graphics.Black)
}

func (r *renderTab) DebugDescription() string {
	return fmt.Sprintf("WindowTab(%q selected=%t)", r.label, r.selected)
}

// contentHost wraps the window content so the content view is a distinct,
// queryable node in the render tree.
type contentHost struct {
	core.RenderObjectBase
	Child core.Widget
}

func (c contentHost) ChildWidget() core.Widget {
	return c.Child
}

func (c contentHost) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	view := &renderContentView{}
	view.SetSelf(view)
	return view
}

func (c contentHost) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderContentView struct {
	layout.RenderBoxBase
	child layout.RenderBox
}

func (r *renderContentView) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderContentView) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderContentView) PerformLayout() {
	constraints := r.Constraints()
	size := graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight}
	r.SetSize(size)
	if r.child != nil {
		r.child.Layout(layout.Loose(size), true)
		r.child.SetParentData(&layout.BoxParentData{})
	}
}

func (r *renderContentView) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, layout.ChildOffset(r.child))
	}
}

func (r *renderContentView) DebugDescription() string {
	return "WindowContentView"
}
