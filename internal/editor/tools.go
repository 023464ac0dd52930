package editor

import (
	"image"
	"image/color"
	"math"

	"github.com/example/easel/internal/raster"
	"github.com/example/easel/internal/selection"
)

// Button identifies the mouse button behind a pointer event.
type Button int

const (
	// Primary is usually the left button and paints with the foreground.
	Primary Button = iota
	// Secondary is usually the right button and paints with the background.
	Secondary
)

// Pointer is a pointer event in canvas coordinates.
type Pointer struct {
	Pos    selection.Point
	Button Button
	Shift  bool
}

// At returns a primary-button pointer event at (x, y).
func At(x, y float64) Pointer {
	return Pointer{Pos: selection.Point{X: x, Y: y}}
}

func (p Pointer) pixel() image.Point {
	return image.Pt(int(math.Floor(p.Pos.X)), int(math.Floor(p.Pos.Y)))
}

// Tool reacts to pointer gestures that the selection controller does not
// consume itself.
type Tool interface {
	Name() string
	// NeedsPreview reports whether the tool draws a transient overlay while
	// the button is held.
	NeedsPreview() bool
	SupportsLineWidth() bool
	// Selects reports whether the tool creates selections. Switching to a
	// tool that does not commits or clears the current selection.
	Selects() bool
	Press(s *State, ev Pointer)
	Drag(s *State, ev Pointer)
	Release(s *State, ev Pointer)
}

// Previewer is implemented by tools that draw their pending shape into the
// view without touching the canvas.
type Previewer interface {
	Preview(s *State, dst *image.RGBA)
}

// stroke tracks the anchor of an in-progress gesture.
type stroke struct {
	start   image.Point
	last    image.Point
	hasLast bool
	button  Button
}

func (s *State) strokeColor() color.RGBA {
	if s.stroke.button == Secondary {
		return s.background
	}
	return s.foreground
}

// Tools lists every tool in toolbar order.
func Tools() []Tool {
	return []Tool{
		RectSelect{}, LassoSelect{}, Pencil{}, Eraser{}, Line{},
		Rectangle{}, Ellipse{}, Fill{}, Eyedropper{}, Text{},
	}
}

// ToolByName finds a tool by its Name.
func ToolByName(name string) (Tool, bool) {
	for _, t := range Tools() {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// Tool returns the active tool.
func (s *State) Tool() Tool { return s.tool }

// SetTool activates t. Pending text is stamped, and leaving the selection
// tools commits or clears the selection.
func (s *State) SetTool(t Tool) {
	if t == nil || t == s.tool {
		return
	}
	if s.text != nil {
		s.FinalizeText()
	}
	if !t.Selects() {
		s.ClearSelection()
	}
	s.capture = nil
	s.stroke = stroke{}
	s.pressed = false
	s.tool = t
}

// RectSelect drags out a rectangular selection. Holding shift keeps it
// square.
type RectSelect struct{}

func (RectSelect) Name() string            { return "select" }
func (RectSelect) NeedsPreview() bool      { return true }
func (RectSelect) SupportsLineWidth() bool { return false }
func (RectSelect) Selects() bool           { return true }

func (RectSelect) Press(s *State, ev Pointer) {
	s.BeginSelection(ev.Pos, CaptureRect)
	s.SetSquare(ev.Shift)
}

func (RectSelect) Drag(s *State, ev Pointer) {
	s.SetSquare(ev.Shift)
	s.ExtendSelection(ev.Pos)
}

func (RectSelect) Release(s *State, ev Pointer) {
	s.SetSquare(ev.Shift)
	s.EndSelection(ev.Pos)
}

// LassoSelect records a free-hand polygon selection.
type LassoSelect struct{}

func (LassoSelect) Name() string            { return "lasso" }
func (LassoSelect) NeedsPreview() bool      { return true }
func (LassoSelect) SupportsLineWidth() bool { return false }
func (LassoSelect) Selects() bool           { return true }

func (LassoSelect) Press(s *State, ev Pointer)   { s.BeginSelection(ev.Pos, CaptureLasso) }
func (LassoSelect) Drag(s *State, ev Pointer)    { s.ExtendSelection(ev.Pos) }
func (LassoSelect) Release(s *State, ev Pointer) { s.EndSelection(ev.Pos) }

// Pencil draws free-hand lines.
type Pencil struct{}

func (Pencil) Name() string            { return "pencil" }
func (Pencil) NeedsPreview() bool      { return false }
func (Pencil) SupportsLineWidth() bool { return true }
func (Pencil) Selects() bool           { return false }

func (Pencil) Press(s *State, ev Pointer) {
	s.PushUndo()
	p := ev.pixel()
	s.stroke = stroke{start: p, last: p, hasLast: true, button: ev.Button}
	raster.Dot(s.canvas, p.X, p.Y, s.lineWidth, s.strokeColor())
}

func (Pencil) Drag(s *State, ev Pointer) { freehand(s, ev, s.strokeColor()) }

func (Pencil) Release(s *State, ev Pointer) {
	freehand(s, ev, s.strokeColor())
	s.stroke.hasLast = false
}

func freehand(s *State, ev Pointer, c color.Color) {
	if !s.stroke.hasLast {
		return
	}
	p := ev.pixel()
	raster.Line(s.canvas, s.stroke.last.X, s.stroke.last.Y, p.X, p.Y, c, s.lineWidth)
	s.stroke.last = p
}

// Eraser paints with the background colour.
type Eraser struct{}

func (Eraser) Name() string            { return "eraser" }
func (Eraser) NeedsPreview() bool      { return false }
func (Eraser) SupportsLineWidth() bool { return true }
func (Eraser) Selects() bool           { return false }

func (Eraser) Press(s *State, ev Pointer) {
	s.PushUndo()
	p := ev.pixel()
	s.stroke = stroke{start: p, last: p, hasLast: true, button: ev.Button}
	raster.Dot(s.canvas, p.X, p.Y, s.lineWidth, s.background)
}

func (Eraser) Drag(s *State, ev Pointer) { freehand(s, ev, s.background) }

func (Eraser) Release(s *State, ev Pointer) {
	freehand(s, ev, s.background)
	s.stroke.hasLast = false
}

// shape is shared by the tools that draw between the press and the release
// point.
type shape func(dst *image.RGBA, a, b image.Point, c color.Color, width int)

func (draw shape) press(s *State, ev Pointer) {
	s.PushUndo()
	p := ev.pixel()
	s.stroke = stroke{start: p, last: p, hasLast: true, button: ev.Button}
}

func (draw shape) drag(s *State, ev Pointer) {
	if s.stroke.hasLast {
		s.stroke.last = ev.pixel()
	}
}

func (draw shape) release(s *State, ev Pointer) {
	if !s.stroke.hasLast {
		return
	}
	draw(s.canvas, s.stroke.start, ev.pixel(), s.strokeColor(), s.lineWidth)
	s.stroke.hasLast = false
}

func (draw shape) preview(s *State, dst *image.RGBA) {
	if !s.pressed || !s.stroke.hasLast {
		return
	}
	draw(dst, s.stroke.start, s.stroke.last, s.strokeColor(), s.lineWidth)
}

func drawLine(dst *image.RGBA, a, b image.Point, c color.Color, width int) {
	raster.Line(dst, a.X, a.Y, b.X, b.Y, c, width)
}

func drawRect(dst *image.RGBA, a, b image.Point, c color.Color, width int) {
	raster.Rect(dst, image.Rectangle{Min: a, Max: b}.Canon(), c, width)
}

func drawEllipse(dst *image.RGBA, a, b image.Point, c color.Color, width int) {
	raster.Ellipse(dst, image.Rectangle{Min: a, Max: b}.Canon(), c, width)
}

// Line draws a straight segment from press to release.
type Line struct{}

func (Line) Name() string                      { return "line" }
func (Line) NeedsPreview() bool                { return true }
func (Line) SupportsLineWidth() bool           { return true }
func (Line) Selects() bool                     { return false }
func (Line) Press(s *State, ev Pointer)        { shape(drawLine).press(s, ev) }
func (Line) Drag(s *State, ev Pointer)         { shape(drawLine).drag(s, ev) }
func (Line) Release(s *State, ev Pointer)      { shape(drawLine).release(s, ev) }
func (Line) Preview(s *State, dst *image.RGBA) { shape(drawLine).preview(s, dst) }

// Rectangle outlines the box spanned by press and release.
type Rectangle struct{}

func (Rectangle) Name() string                      { return "rectangle" }
func (Rectangle) NeedsPreview() bool                { return true }
func (Rectangle) SupportsLineWidth() bool           { return true }
func (Rectangle) Selects() bool                     { return false }
func (Rectangle) Press(s *State, ev Pointer)        { shape(drawRect).press(s, ev) }
func (Rectangle) Drag(s *State, ev Pointer)         { shape(drawRect).drag(s, ev) }
func (Rectangle) Release(s *State, ev Pointer)      { shape(drawRect).release(s, ev) }
func (Rectangle) Preview(s *State, dst *image.RGBA) { shape(drawRect).preview(s, dst) }

// Ellipse outlines the ellipse inscribed in the box spanned by press and
// release.
type Ellipse struct{}

func (Ellipse) Name() string                      { return "ellipse" }
func (Ellipse) NeedsPreview() bool                { return true }
func (Ellipse) SupportsLineWidth() bool           { return true }
func (Ellipse) Selects() bool                     { return false }
func (Ellipse) Press(s *State, ev Pointer)        { shape(drawEllipse).press(s, ev) }
func (Ellipse) Drag(s *State, ev Pointer)         { shape(drawEllipse).drag(s, ev) }
func (Ellipse) Release(s *State, ev Pointer)      { shape(drawEllipse).release(s, ev) }
func (Ellipse) Preview(s *State, dst *image.RGBA) { shape(drawEllipse).preview(s, dst) }

// Fill flood-fills the 4-connected region under the pointer.
type Fill struct{}

func (Fill) Name() string            { return "fill" }
func (Fill) NeedsPreview() bool      { return false }
func (Fill) SupportsLineWidth() bool { return false }
func (Fill) Selects() bool           { return false }

func (Fill) Press(s *State, ev Pointer) {
	p := ev.pixel()
	if !p.In(s.canvas.Bounds()) {
		return
	}
	c := s.foreground
	if ev.Button == Secondary {
		c = s.background
	}
	if s.canvas.RGBAAt(p.X, p.Y) == c {
		return
	}
	s.PushUndo()
	raster.FloodFill(s.canvas, p.X, p.Y, c)
}

func (Fill) Drag(*State, Pointer)    {}
func (Fill) Release(*State, Pointer) {}

// Eyedropper picks the colour under the pointer: the primary button sets the
// foreground and the secondary button the background.
type Eyedropper struct{}

func (Eyedropper) Name() string            { return "eyedropper" }
func (Eyedropper) NeedsPreview() bool      { return false }
func (Eyedropper) SupportsLineWidth() bool { return false }
func (Eyedropper) Selects() bool           { return false }

func (Eyedropper) Press(s *State, ev Pointer) {
	p := ev.pixel()
	if !p.In(s.canvas.Bounds()) {
		return
	}
	c := s.canvas.RGBAAt(p.X, p.Y)
	if ev.Button == Secondary {
		s.background = c
		return
	}
	s.foreground = c
}

func (Eyedropper) Drag(*State, Pointer)    {}
func (Eyedropper) Release(*State, Pointer) {}

// Text places a caret; typed runes are stamped on FinalizeText.
type Text struct{}

func (Text) Name() string            { return "text" }
func (Text) NeedsPreview() bool      { return false }
func (Text) SupportsLineWidth() bool { return false }
func (Text) Selects() bool           { return false }

func (Text) Press(s *State, ev Pointer) {
	if ev.Button == Secondary {
		s.CancelText()
		return
	}
	if s.text != nil {
		s.FinalizeText()
	}
	s.BeginText(ev.pixel())
}

func (Text) Drag(*State, Pointer)    {}
func (Text) Release(*State, Pointer) {}
