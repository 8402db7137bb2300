package graphics

// Canvas receives drawing commands from render objects during paint.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	FillRect(rect Rect, color Color)
	DrawText(content string, origin Offset, color Color)
}

// Op is a single recorded drawing command.
type Op interface {
	isOp()
}

// SaveOp pushes the current transform.
type SaveOp struct{}

// RestoreOp pops the most recent transform.
type RestoreOp struct{}

// TranslateOp shifts the origin of subsequent commands.
type TranslateOp struct {
	DX float64
	DY float64
}

// FillRectOp fills a rectangle with a solid color.
type FillRectOp struct {
	Rect  Rect
	Color Color
}

// DrawTextOp draws a single line of text at an origin.
type DrawTextOp struct {
	Content string
	Origin  Offset
	Color   Color
}

func (SaveOp) isOp()      {}
func (RestoreOp) isOp()   {}
func (TranslateOp) isOp() {}
func (FillRectOp) isOp()  {}
func (DrawTextOp) isOp()  {}

// DisplayList is an ordered recording of drawing commands for one frame.
type DisplayList struct {
	Ops []Op
}

// Recorder is a Canvas that records commands into a DisplayList.
type Recorder struct {
	list DisplayList
}

// Save records a SaveOp.
func (r *Recorder) Save() {
	r.list.Ops = append(r.list.Ops, SaveOp{})
}

// Restore records a RestoreOp.
func (r *Recorder) Restore() {
	r.list.Ops = append(r.list.Ops, RestoreOp{})
}

// Translate records a TranslateOp.
func (r *Recorder) Translate(dx, dy float64) {
	r.list.Ops = append(r.list.Ops, TranslateOp{DX: dx, DY: dy})
}

// FillRect records a FillRectOp. Fully transparent fills are dropped.
func (r *Recorder) FillRect(rect Rect, color Color) {
	if rect.IsEmpty() || color.IsTransparent() {
		return
	}
	r.list.Ops = append(r.list.Ops, FillRectOp{Rect: rect, Color: color})
}

// DrawText records a DrawTextOp.
func (r *Recorder) DrawText(content string, origin Offset, color Color) {
	if content == "" {
		return
	}
	r.list.Ops = append(r.list.Ops, DrawTextOp{Content: content, Origin: origin, Color: color})
}

// Finish returns the recorded display list and resets the recorder.
func (r *Recorder) Finish() DisplayList {
	list := r.list
	r.list = DisplayList{}
	return list
}
