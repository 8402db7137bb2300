package widgets

import (
	"fmt"

	"github.com/go-drift/viewproxy/pkg/core"
	"github.com/go-drift/viewproxy/pkg/graphics"
	"github.com/go-drift/viewproxy/pkg/layout"
)

// Text renders a single line of text.
type Text struct {
	core.RenderObjectBase
	Content string
	Color   graphics.Color
}

func (t Text) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	text := &RenderText{content: t.Content, color: textColor(t.Color)}
	text.SetSelf(text)
	return text
}

func (t Text) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if text, ok := renderObject.(*RenderText); ok {
		if text.content != t.Content {
			text.content = t.Content
			text.MarkNeedsLayout()
		}
		text.color = textColor(t.Color)
		text.MarkNeedsPaint()
	}
}

func textColor(c graphics.Color) graphics.Color {
	if c.IsTransparent() {
		return graphics.Black
	}
	return c
}

// RenderText is the render object backing Text. It is exported so callers
// can target it with typed proxy relationships.
type RenderText struct {
	layout.RenderBoxBase
	content string
	color   graphics.Color
}

// Content returns the text being rendered.
func (r *RenderText) Content() string {
	return r.content
}

// SetContent replaces the text and invalidates layout.
func (r *RenderText) SetContent(content string) {
	if r.content == content {
		return
	}
	r.content = content
	r.MarkNeedsLayout()
	r.MarkNeedsPaint()
}

func (r *RenderText) PerformLayout() {
	r.SetSize(r.Constraints().Constrain(graphics.MeasureText(r.content)))
}

func (r *RenderText) Paint(ctx *layout.PaintContext) {
	ctx.Canvas.DrawText(r.content, graphics.Offset{Y: graphics.TextBaseline()}, r.color)
}

// DebugDescription includes the text content so description patterns can
// target specific labels.
func (r *RenderText) DebugDescription() string {
	return fmt.Sprintf("RenderText(%q)", r.content)
}
