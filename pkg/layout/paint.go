package layout

import "github.com/go-drift/viewproxy/pkg/graphics"

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a child render box at the given offset.
func (p *PaintContext) PaintChild(child RenderBox, offset graphics.Offset) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
}
