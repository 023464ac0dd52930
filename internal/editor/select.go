package editor

import (
	"image"
	"math"

	"github.com/example/easel/internal/floating"
	"github.com/example/easel/internal/raster"
	"github.com/example/easel/internal/selection"
)

// CaptureKind says which outline an in-progress selection drag is drawing.
type CaptureKind int

const (
	// CaptureRect captures a rectangle between the press and the pointer.
	CaptureRect CaptureKind = iota
	// CaptureLasso records every pointer position as a polygon vertex.
	CaptureLasso
)

type capture struct {
	kind   CaptureKind
	start  selection.Point
	end    selection.Point
	points []selection.Point
	square bool
}

func (c *capture) selection() *selection.Selection {
	if c.kind == CaptureLasso {
		return selection.NewPolygon(c.points)
	}
	end := c.end
	if c.square {
		end = constrainSquare(c.start, end)
	}
	return selection.NewRect(c.start, end)
}

// constrainSquare moves end so the box it spans with start is square, using
// the larger of the two extents.
func constrainSquare(start, end selection.Point) selection.Point {
	dx, dy := end.X-start.X, end.Y-start.Y
	side := math.Max(math.Abs(dx), math.Abs(dy))
	return selection.Point{
		X: start.X + math.Copysign(side, dx),
		Y: start.Y + math.Copysign(side, dy),
	}
}

// BeginSelection starts capturing a new selection at p. Any floating buffer
// is committed first and any previous selection dropped.
func (s *State) BeginSelection(p selection.Point, kind CaptureKind) {
	s.ClearSelection()
	c := &capture{kind: kind, start: p, end: p}
	if kind == CaptureLasso {
		c.points = []selection.Point{p}
	}
	s.capture = c
}

// ExtendSelection moves the capture's live end to p.
func (s *State) ExtendSelection(p selection.Point) {
	if s.capture == nil {
		return
	}
	s.capture.end = p
	if s.capture.kind == CaptureLasso {
		last := s.capture.points[len(s.capture.points)-1]
		if last != p {
			s.capture.points = append(s.capture.points, p)
		}
	}
}

// SetSquare toggles the square constraint of a rectangle capture.
func (s *State) SetSquare(on bool) {
	if s.capture != nil {
		s.capture.square = on
	}
}

// EndSelection finishes the capture at p. A capture that encloses no pixels
// leaves nothing selected and returns false.
func (s *State) EndSelection(p selection.Point) bool {
	if s.capture == nil {
		return false
	}
	s.ExtendSelection(p)
	sel := s.capture.selection()
	s.capture = nil
	if !sel.Valid() {
		return false
	}
	s.sel = sel
	return true
}

// Capturing reports whether a selection drag is in progress.
func (s *State) Capturing() bool { return s.capture != nil }

// Select replaces the selection with an integer rectangle, committing any
// floating buffer first.
func (s *State) Select(r image.Rectangle) bool {
	s.ClearSelection()
	sel := selection.FromRectangle(r.Intersect(s.canvas.Bounds()))
	if !sel.Valid() {
		return false
	}
	s.sel = sel
	return true
}

// SelectPolygon replaces the selection with a lasso outline.
func (s *State) SelectPolygon(pts []selection.Point) bool {
	s.ClearSelection()
	sel := selection.NewPolygon(pts)
	if !sel.Valid() {
		return false
	}
	s.sel = sel
	return true
}

// SelectAll selects the whole canvas.
func (s *State) SelectAll() bool {
	return s.Select(s.canvas.Bounds())
}

// Lift moves the selected pixels into a floating buffer, leaving a hole
// painted with the background. It records one undo snapshot per floating
// session and does nothing when already floating or nothing valid is
// selected.
func (s *State) Lift() bool {
	if s.sel == nil || s.float != nil || !s.sel.Valid() {
		return false
	}
	if !s.undoPushed {
		s.history.Push(s.canvas)
		s.undoPushed = true
	}
	buf, _ := floating.Lift(s.canvas, s.sel, s.background)
	s.float = buf
	s.dragCompleted = false
	return true
}

// BeginDrag attaches the floating buffer to the pointer at p.
func (s *State) BeginDrag(p selection.Point) bool {
	if s.float == nil {
		return false
	}
	o := s.sel.Origin()
	s.dragOffset = selection.Point{X: p.X - o.X, Y: p.Y - o.Y}
	s.dragging = true
	return true
}

// DragTo moves the floating selection so the grab point follows p. The
// origin is rounded to whole pixels.
func (s *State) DragTo(p selection.Point) {
	if !s.dragging || s.float == nil {
		return
	}
	s.sel.MoveTo(selection.Point{
		X: math.Round(p.X - s.dragOffset.X),
		Y: math.Round(p.Y - s.dragOffset.Y),
	})
}

// EndDrag drops the floating buffer at its current position. It stays
// floating until committed.
func (s *State) EndDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.dragCompleted = true
}

// Dragging reports whether the floating buffer follows the pointer.
func (s *State) Dragging() bool { return s.dragging }

// Commit composites the floating buffer onto the canvas at its current
// position and clears the selection. When pushUndo is set a snapshot is
// recorded unless the floating session already has one.
func (s *State) Commit(pushUndo bool) bool {
	if s.float == nil {
		return false
	}
	if pushUndo && !s.undoPushed {
		s.history.Push(s.canvas)
	}
	s.float.CompositeOnto(s.canvas, s.FloatOrigin())
	s.dropSelection()
	return true
}

// Cancel discards the floating buffer without compositing it. The hole left
// by Lift stays; Undo restores it.
func (s *State) Cancel() bool {
	if s.float == nil && s.sel == nil && s.capture == nil {
		return false
	}
	s.dropSelection()
	return true
}

// ClearSelection commits a floating buffer, or forgets a selection that was
// never lifted.
func (s *State) ClearSelection() {
	if s.float != nil {
		s.Commit(true)
		return
	}
	s.dropSelection()
}

func (s *State) dropSelection() {
	s.sel = nil
	s.float = nil
	s.capture = nil
	s.dragging = false
	s.dragCompleted = false
	s.dragOffset = selection.Point{}
	s.undoPushed = false
}

// RotateCW rotates the selection, or the whole canvas when nothing is
// selected, 90° clockwise.
func (s *State) RotateCW() bool {
	return s.transform((*floating.Buffer).RotateCW, raster.RotateCW)
}

// RotateCCW rotates the selection, or the whole canvas, 90°
// counter-clockwise.
func (s *State) RotateCCW() bool {
	return s.transform((*floating.Buffer).RotateCCW, raster.RotateCCW)
}

// FlipHorizontal mirrors the selection, or the whole canvas, left to right.
func (s *State) FlipHorizontal() bool {
	return s.transform((*floating.Buffer).FlipHorizontal, raster.FlipHorizontal)
}

// FlipVertical mirrors the selection, or the whole canvas, top to bottom.
func (s *State) FlipVertical() bool {
	return s.transform((*floating.Buffer).FlipVertical, raster.FlipVertical)
}

func (s *State) transform(buf func(*floating.Buffer), whole func(*image.RGBA) *image.RGBA) bool {
	if s.sel != nil {
		if s.float == nil && !s.Lift() {
			return false
		}
		buf(s.float)
		size := s.float.Size()
		s.sel.Reshape(size.X, size.Y)
		return true
	}
	s.history.Push(s.canvas)
	s.install(whole(s.canvas))
	return true
}
