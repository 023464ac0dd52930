package editor

import (
	"image"
	"log"

	"github.com/example/easel/internal/raster"
	"github.com/example/easel/internal/selection"
)

// PointerDown routes a button press. A floating selection under the pointer
// is picked up again; a press elsewhere commits it and then reaches the
// active tool. With a selection tool, pressing inside a plain selection
// lifts it and starts dragging.
func (s *State) PointerDown(ev Pointer) {
	s.pressed = true
	if s.float != nil {
		if s.sel.HitTest(ev.Pos) {
			s.BeginDrag(ev.Pos)
			return
		}
		s.Commit(true)
	} else if s.sel != nil {
		if s.tool.Selects() && ev.Button == Primary && s.sel.HitTest(ev.Pos) {
			if s.Lift() {
				s.BeginDrag(ev.Pos)
			}
			return
		}
		s.ClearSelection()
	}
	if s.text != nil {
		if _, ok := s.tool.(Text); !ok {
			s.FinalizeText()
		}
	}
	s.tool.Press(s, ev)
}

// PointerMove routes motion while a button is held.
func (s *State) PointerMove(ev Pointer) {
	if s.dragging {
		s.DragTo(ev.Pos)
		return
	}
	if s.pressed {
		s.tool.Drag(s, ev)
	}
}

// PointerUp routes a button release.
func (s *State) PointerUp(ev Pointer) {
	if !s.pressed {
		return
	}
	s.pressed = false
	if s.dragging {
		s.DragTo(ev.Pos)
		s.EndDrag()
		return
	}
	s.tool.Release(s, ev)
}

// View returns the image to display: the canvas with the floating buffer,
// the active tool's preview and any pending text drawn on top.
func (s *State) View() *image.RGBA {
	out := s.Flatten()
	if p, ok := s.tool.(Previewer); ok && s.tool.NeedsPreview() {
		p.Preview(s, out)
	}
	if s.text != nil && len(s.text.runes) > 0 {
		if err := raster.Text(out, s.text.at.X, s.text.at.Y, string(s.text.runes), s.foreground, s.text.size); err != nil {
			log.Printf("text preview: %v", err)
		}
	}
	return out
}

// Outline returns the selection outline to animate, in canvas coordinates.
// closed is false for a lasso still being drawn.
func (s *State) Outline() (pts []selection.Point, closed bool) {
	if c := s.capture; c != nil {
		if c.kind == CaptureLasso {
			return append([]selection.Point(nil), c.points...), false
		}
		return boxCorners(c.selection().Box()), true
	}
	if s.sel == nil {
		return nil, false
	}
	if s.sel.IsPolygon() {
		return s.sel.Points(), true
	}
	return boxCorners(s.sel.Box()), true
}

func boxCorners(b selection.Box) []selection.Point {
	b = b.Normalize()
	return []selection.Point{
		{X: b.X1, Y: b.Y1}, {X: b.X2, Y: b.Y1},
		{X: b.X2, Y: b.Y2}, {X: b.X1, Y: b.Y2},
	}
}
