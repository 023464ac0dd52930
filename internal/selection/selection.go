// Package selection describes selected canvas regions. A region is either an
// axis-aligned rectangle or a closed polygon captured by the lasso, expressed
// in floating point canvas coordinates.
package selection

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// Point is a canvas-space coordinate.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned box given by two corners in any order.
type Box struct {
	X1, Y1, X2, Y2 float64
}

// Normalize orders the corners so X1 <= X2 and Y1 <= Y2.
func (b Box) Normalize() Box {
	return Box{
		X1: math.Min(b.X1, b.X2),
		Y1: math.Min(b.Y1, b.Y2),
		X2: math.Max(b.X1, b.X2),
		Y2: math.Max(b.Y1, b.Y2),
	}
}

// PixelBounds floors the minimum corner and ceils the maximum corner. The
// result may be empty; callers treat that as nothing selected.
func (b Box) PixelBounds() image.Rectangle {
	n := b.Normalize()
	return image.Rectangle{
		Min: image.Pt(int(math.Floor(n.X1)), int(math.Floor(n.Y1))),
		Max: image.Pt(int(math.Ceil(n.X2)), int(math.Ceil(n.Y2))),
	}
}

// Contains is an inclusive bounds check on the normalized corners.
func (b Box) Contains(p Point) bool {
	n := b.Normalize()
	return p.X >= n.X1 && p.X <= n.X2 && p.Y >= n.Y1 && p.Y <= n.Y2
}

// Shape is implemented by Rect and Polygon only.
type Shape interface {
	bounds() Box
	contains(p Point) bool
	translate(dx, dy float64) Shape
}

// Rect is a rectangular region. Corners are kept as recorded.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

func (r Rect) bounds() Box { return Box(r) }

func (r Rect) contains(p Point) bool { return Box(r).Contains(p) }

func (r Rect) translate(dx, dy float64) Shape {
	return Rect{r.X1 + dx, r.Y1 + dy, r.X2 + dx, r.Y2 + dy}
}

// Polygon is a closed lasso outline.
type Polygon struct {
	Points []Point
}

func (pg Polygon) bounds() Box {
	if len(pg.Points) == 0 {
		return Box{}
	}
	b := Box{pg.Points[0].X, pg.Points[0].Y, pg.Points[0].X, pg.Points[0].Y}
	for _, p := range pg.Points[1:] {
		b.X1 = math.Min(b.X1, p.X)
		b.Y1 = math.Min(b.Y1, p.Y)
		b.X2 = math.Max(b.X2, p.X)
		b.Y2 = math.Max(b.Y2, p.Y)
	}
	return b
}

// contains casts a horizontal ray and counts edge crossings.
func (pg Polygon) contains(p Point) bool {
	pts := pg.Points
	if len(pts) < 3 {
		return false
	}
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		pi, pj := pts[i], pts[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

func (pg Polygon) translate(dx, dy float64) Shape {
	out := make([]Point, len(pg.Points))
	for i, p := range pg.Points {
		out[i] = Point{p.X + dx, p.Y + dy}
	}
	return Polygon{Points: out}
}

// Selection is a shape plus its cached bounding box.
type Selection struct {
	shape Shape
	box   Box
}

// NewRect selects the rectangle spanned by two corners.
func NewRect(a, b Point) *Selection {
	r := Rect{a.X, a.Y, b.X, b.Y}
	return &Selection{shape: r, box: r.bounds()}
}

// NewPolygon selects the region enclosed by pts. The slice is copied.
func NewPolygon(pts []Point) *Selection {
	pg := Polygon{Points: append([]Point(nil), pts...)}
	return &Selection{shape: pg, box: pg.bounds()}
}

// FromRectangle selects an integer pixel rectangle.
func FromRectangle(r image.Rectangle) *Selection {
	return NewRect(Point{float64(r.Min.X), float64(r.Min.Y)}, Point{float64(r.Max.X), float64(r.Max.Y)})
}

// Shape returns the underlying Rect or Polygon.
func (s *Selection) Shape() Shape { return s.shape }

// Box returns the cached bounding box.
func (s *Selection) Box() Box { return s.box }

// IsPolygon reports whether the selection came from the lasso.
func (s *Selection) IsPolygon() bool {
	_, ok := s.shape.(Polygon)
	return ok
}

// Points returns a copy of the polygon outline, or nil for rectangles.
func (s *Selection) Points() []Point {
	pg, ok := s.shape.(Polygon)
	if !ok {
		return nil
	}
	return append([]Point(nil), pg.Points...)
}

// Valid reports whether the selection can be hit-tested and lifted.
func (s *Selection) Valid() bool {
	if pg, ok := s.shape.(Polygon); ok && len(pg.Points) < 3 {
		return false
	}
	return !s.PixelBounds().Empty()
}

// HitTest reports whether p falls inside the selected region.
func (s *Selection) HitTest(p Point) bool { return s.shape.contains(p) }

// PixelBounds returns the integer rectangle covering the selection.
func (s *Selection) PixelBounds() image.Rectangle { return s.box.PixelBounds() }

// Origin returns the top-left corner of the bounding box.
func (s *Selection) Origin() Point {
	n := s.box.Normalize()
	return Point{n.X1, n.Y1}
}

// Translate moves the shape and its bounding box by (dx, dy).
func (s *Selection) Translate(dx, dy float64) {
	s.shape = s.shape.translate(dx, dy)
	s.box = Box{s.box.X1 + dx, s.box.Y1 + dy, s.box.X2 + dx, s.box.Y2 + dy}
}

// MoveTo translates the selection so its origin lands on p.
func (s *Selection) MoveTo(p Point) {
	o := s.Origin()
	s.Translate(p.X-o.X, p.Y-o.Y)
}

// SnapTo aligns the bounding box with the pixel rectangle r. A rectangle
// selection becomes r exactly; polygon points are left as drawn.
func (s *Selection) SnapTo(r image.Rectangle) {
	s.box = Box{float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y)}
	if _, ok := s.shape.(Rect); ok {
		s.shape = Rect(s.box)
	}
}

// Reshape turns the selection into a w×h rectangle at its current origin.
func (s *Selection) Reshape(w, h int) {
	o := s.Origin()
	r := Rect{o.X, o.Y, o.X + float64(w), o.Y + float64(h)}
	s.shape = r
	s.box = r.bounds()
}

// Mask rasterises the polygon into an alpha mask covering r, with r.Min at
// the mask origin. Rectangles return nil, meaning fully opaque.
func (s *Selection) Mask(r image.Rectangle) *image.Alpha {
	pg, ok := s.shape.(Polygon)
	if !ok || len(pg.Points) < 3 || r.Empty() {
		return nil
	}
	dc := gg.NewContext(r.Dx(), r.Dy())
	dc.SetFillRuleEvenOdd()
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	dc.MoveTo(pg.Points[0].X-ox, pg.Points[0].Y-oy)
	for _, p := range pg.Points[1:] {
		dc.LineTo(p.X-ox, p.Y-oy)
	}
	dc.ClosePath()
	dc.SetRGBA(0, 0, 0, 1)
	dc.Fill()
	return dc.AsMask()
}
