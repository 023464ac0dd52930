package raster

import (
	"image"
	"image/color"
	"math"
)

// Dot paints a square brush of side thick centred on (x, y).
func Dot(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	b := img.Bounds()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if p := image.Pt(x+dx, y+dy); p.In(b) {
				img.Set(p.X, p.Y, col)
			}
		}
	}
}

// Line draws a Bresenham line stamped with a square brush.
func Line(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		Dot(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect outlines r. The outline sits on the inside edge of r.
func Rect(img *image.RGBA, r image.Rectangle, col color.Color, thick int) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	Line(img, r.Min.X, r.Min.Y, r.Max.X-1, r.Min.Y, col, thick)
	Line(img, r.Max.X-1, r.Min.Y, r.Max.X-1, r.Max.Y-1, col, thick)
	Line(img, r.Max.X-1, r.Max.Y-1, r.Min.X, r.Max.Y-1, col, thick)
	Line(img, r.Min.X, r.Max.Y-1, r.Min.X, r.Min.Y, col, thick)
}

// Ellipse outlines the ellipse inscribed in r.
func Ellipse(img *image.RGBA, r image.Rectangle, col color.Color, thick int) {
	r = r.Canon()
	cx := (r.Min.X + r.Max.X) / 2
	cy := (r.Min.Y + r.Max.Y) / 2
	rx := r.Dx() / 2
	ry := r.Dy() / 2
	steps := int(math.Ceil(2 * math.Pi * math.Sqrt(float64(rx*rx+ry*ry))))
	if steps < 8 {
		steps = 8
	}
	var px, py int
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(math.Cos(angle)*float64(rx)))
		y := cy + int(math.Round(math.Sin(angle)*float64(ry)))
		if i > 0 {
			Line(img, px, py, x, y, col, thick)
		} else {
			Dot(img, x, y, thick, col)
		}
		px, py = x, y
	}
}

// FloodFill replaces the 4-connected region of the colour found at (x, y)
// with c. It returns false when nothing changed.
func FloodFill(img *image.RGBA, x, y int, c color.Color) bool {
	b := img.Bounds()
	start := image.Pt(x, y)
	if !start.In(b) {
		return false
	}
	target := img.RGBAAt(x, y)
	repl := color.RGBAModel.Convert(c).(color.RGBA)
	if target == repl {
		return false
	}
	queue := []image.Point{start}
	img.SetRGBA(x, y, repl)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range [4]image.Point{{p.X + 1, p.Y}, {p.X - 1, p.Y}, {p.X, p.Y + 1}, {p.X, p.Y - 1}} {
			if n.In(b) && img.RGBAAt(n.X, n.Y) == target {
				img.SetRGBA(n.X, n.Y, repl)
				queue = append(queue, n)
			}
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
