package render

import (
	"image"
	"image/color"
	"time"
)

// Marching ants animation constants: dashes of AntDash pixels alternate
// colours and the phase advances by one every AntInterval.
const (
	AntDash     = 4
	AntPeriod   = 2 * AntDash
	AntInterval = 50 * time.Millisecond
)

// NextPhase advances the ants by one pixel.
func NextPhase(phase int) int {
	return (phase + 1) % AntPeriod
}

// DashedLine draws a Bresenham line from (x0, y0) to (x1, y1) that switches
// between c1 and c2 every dash pixels. step is the running pixel count, so a
// polyline keeps its dash pattern across corners; the updated count is
// returned.
func DashedLine(img *image.RGBA, x0, y0, x1, y1, dash, step int, c1, c2 color.Color) int {
	if dash < 1 {
		dash = 1
	}
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	b := img.Bounds()
	for {
		col := c1
		if (step/dash)%2 == 1 {
			col = c2
		}
		if image.Pt(x0, y0).In(b) {
			img.Set(x0, y0, col)
		}
		step++
		if x0 == x1 && y0 == y1 {
			return step
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

// Ants outlines pts with a two-colour dashed line offset by phase. closed
// joins the last point back to the first.
func Ants(dst *image.RGBA, pts []image.Point, closed bool, phase int, c1, c2 color.Color) {
	if len(pts) == 0 {
		return
	}
	step := phase
	for i := 0; i+1 < len(pts); i++ {
		// the shared corner is drawn by the next segment
		step = DashedLine(dst, pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, AntDash, step, c1, c2) - 1
	}
	last := pts[len(pts)-1]
	if closed && len(pts) > 2 {
		DashedLine(dst, last.X, last.Y, pts[0].X, pts[0].Y, AntDash, step, c1, c2)
	} else if len(pts) == 1 {
		DashedLine(dst, last.X, last.Y, last.X, last.Y, AntDash, step, c1, c2)
	}
}

// AntsRect outlines the pixels of r, drawing on its inside edge.
func AntsRect(dst *image.RGBA, r image.Rectangle, phase int, c1, c2 color.Color) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	Ants(dst, []image.Point{
		r.Min, {r.Max.X - 1, r.Min.Y}, {r.Max.X - 1, r.Max.Y - 1}, {r.Min.X, r.Max.Y - 1},
	}, true, phase, c1, c2)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
