// Package render paints editor frames: the chrome around the canvas, the
// zoomed canvas view and the marching-ants selection outline.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/easel/internal/selection"
	"github.com/example/easel/internal/theme"
)

// Chrome dimensions in window pixels.
const (
	ToolbarWidth = 84
	StatusHeight = 22
	buttonHeight = 22
	swatchSize   = 16
	swatchGap    = 2
	widthRow     = 16
	checkerSize  = 8
)

// Viewport maps between canvas and window coordinates.
type Viewport struct {
	Origin image.Point // window position of canvas (0, 0)
	Zoom   float64
}

// ToScreen converts a canvas point to window pixels.
func (v Viewport) ToScreen(p selection.Point) image.Point {
	return image.Pt(
		v.Origin.X+int(math.Floor(p.X*v.zoom())),
		v.Origin.Y+int(math.Floor(p.Y*v.zoom())),
	)
}

// ToCanvas converts a window position to canvas coordinates.
func (v Viewport) ToCanvas(x, y float32) selection.Point {
	return selection.Point{
		X: (float64(x) - float64(v.Origin.X)) / v.zoom(),
		Y: (float64(y) - float64(v.Origin.Y)) / v.zoom(),
	}
}

// Rect returns the window rectangle covered by a canvas of the given size.
func (v Viewport) Rect(size image.Point) image.Rectangle {
	return image.Rectangle{
		Min: v.Origin,
		Max: v.Origin.Add(image.Pt(int(float64(size.X)*v.zoom()), int(float64(size.Y)*v.zoom()))),
	}
}

func (v Viewport) zoom() float64 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}

// FitZoom returns the largest zoom, at most 1, that shows a canvas of size
// inside avail.
func FitZoom(size image.Point, avail image.Rectangle) float64 {
	if size.X <= 0 || size.Y <= 0 || avail.Empty() {
		return 1
	}
	z := math.Min(float64(avail.Dx())/float64(size.X), float64(avail.Dy())/float64(size.Y))
	return math.Min(z, 1)
}

// Layout positions the chrome for a window size.
type Layout struct {
	Tools   []image.Rectangle
	Palette []image.Rectangle
	Widths  []image.Rectangle
	Swatch  image.Rectangle // foreground over background indicator
	Canvas  image.Rectangle // area available to the canvas view
	Status  image.Rectangle
}

// NewLayout lays out tools buttons, colours palette swatches and widths
// line width rows down the left edge of a window of the given size.
func NewLayout(size image.Point, tools, colors, widths int) Layout {
	var l Layout
	y := 0
	for i := 0; i < tools; i++ {
		l.Tools = append(l.Tools, image.Rect(0, y, ToolbarWidth, y+buttonHeight))
		y += buttonHeight
	}
	y += 6
	l.Swatch = image.Rect(4, y, 4+2*swatchSize, y+2*swatchSize)
	y += 2*swatchSize + 6
	x := 4
	for i := 0; i < colors; i++ {
		l.Palette = append(l.Palette, image.Rect(x, y, x+swatchSize, y+swatchSize))
		x += swatchSize + swatchGap
		if x+swatchSize > ToolbarWidth {
			x = 4
			y += swatchSize + swatchGap
		}
	}
	if x != 4 {
		y += swatchSize + swatchGap
	}
	y += 4
	for i := 0; i < widths; i++ {
		l.Widths = append(l.Widths, image.Rect(0, y, ToolbarWidth, y+widthRow))
		y += widthRow
	}
	l.Status = image.Rect(0, size.Y-StatusHeight, size.X, size.Y)
	l.Canvas = image.Rect(ToolbarWidth, 0, size.X, size.Y-StatusHeight)
	return l
}

// Hit returns the index of the first rectangle containing p, or -1.
func Hit(rects []image.Rectangle, p image.Point) int {
	for i, r := range rects {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// Frame is everything needed to paint one window frame.
type Frame struct {
	Size     image.Point
	View     *image.RGBA
	Viewport Viewport
	Outline  []selection.Point
	Closed   bool
	Phase    int

	Tools      []string
	ActiveTool int
	HoverTool  int
	Palette    []color.RGBA
	Foreground color.RGBA
	Background color.RGBA
	Widths     []int
	LineWidth  int // shown when ShowWidths is set
	ShowWidths bool

	Status string
	Prompt string // modal question drawn over the canvas
	Theme  *theme.Theme
}

// Backdrop caches the checkerboard drawn behind transparent pixels.
type Backdrop struct {
	img *image.RGBA
	th  *theme.Theme
}

// Draw fills r of dst with the checkerboard.
func (b *Backdrop) Draw(dst *image.RGBA, r image.Rectangle, th *theme.Theme) {
	bounds := dst.Bounds()
	if b.img == nil || b.img.Bounds() != bounds || b.th != th {
		b.img = image.NewRGBA(bounds)
		Checkerboard(b.img, bounds, checkerSize, th.CheckerLight, th.CheckerDark)
		b.th = th
	}
	draw.Draw(dst, r, b.img, r.Min, draw.Src)
}

// Checkerboard fills rect of dst with squares of size alternating light and
// dark.
func Checkerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x/size)+(y/size))%2 == 0 {
				dst.Set(x, y, light)
			} else {
				dst.Set(x, y, dark)
			}
		}
	}
}

// Draw paints f into dst.
func Draw(dst *image.RGBA, f Frame, layout Layout, backdrop *Backdrop) {
	th := f.Theme
	if th == nil {
		th = theme.Default()
	}
	fill(dst, dst.Bounds(), th.Background)

	if f.View != nil {
		r := f.Viewport.Rect(f.View.Bounds().Size())
		backdrop.Draw(dst, r.Intersect(layout.Canvas), th)
		clip := dst.SubImage(layout.Canvas).(*image.RGBA)
		xdraw.NearestNeighbor.Scale(clip, r, f.View, f.View.Bounds(), draw.Over, nil)
		if len(f.Outline) > 0 {
			pts := make([]image.Point, len(f.Outline))
			for i, p := range f.Outline {
				pts[i] = f.Viewport.ToScreen(p)
			}
			Ants(clip, pts, f.Closed, f.Phase, th.AntsLight, th.AntsDark)
		}
	}

	drawToolbar(dst, f, layout, th)
	drawStatus(dst, f.Status, layout.Status, th)
	if f.Prompt != "" {
		drawPrompt(dst, f.Prompt, layout.Canvas, th)
	}
}

func drawToolbar(dst *image.RGBA, f Frame, l Layout, th *theme.Theme) {
	bar := image.Rect(0, 0, ToolbarWidth, l.Status.Min.Y)
	fill(dst, bar, th.ToolbarBackground)
	for i, r := range l.Tools {
		if i >= len(f.Tools) {
			break
		}
		c := th.ButtonBackground
		switch {
		case i == f.ActiveTool:
			c = th.ButtonActive
		case i == f.HoverTool:
			c = th.ButtonHover
		}
		fill(dst, r, c)
		outline(dst, r, th.ButtonBorder)
		label(dst, f.Tools[i], r.Min.X+4, r.Min.Y+15, th.ButtonText)
	}

	// background swatch behind, foreground in front
	s := l.Swatch
	bg := image.Rect(s.Min.X+swatchSize/2, s.Min.Y+swatchSize/2, s.Max.X, s.Max.Y)
	fg := image.Rect(s.Min.X, s.Min.Y, s.Max.X-swatchSize/2, s.Max.Y-swatchSize/2)
	fill(dst, bg, f.Background)
	outline(dst, bg, th.ButtonBorder)
	fill(dst, fg, f.Foreground)
	outline(dst, fg, th.ButtonBorder)

	for i, r := range l.Palette {
		if i >= len(f.Palette) {
			break
		}
		fill(dst, r, f.Palette[i])
		if f.Palette[i] == f.Foreground {
			outline(dst, r, th.ButtonActive)
		}
	}

	if !f.ShowWidths {
		return
	}
	for i, r := range l.Widths {
		if i >= len(f.Widths) {
			break
		}
		c := th.ButtonBackground
		if f.Widths[i] == f.LineWidth {
			c = th.ButtonActive
		}
		fill(dst, r, c)
		label(dst, fmt.Sprintf("%d", f.Widths[i]), 4, r.Min.Y+12, th.ButtonText)
		mid := r.Min.Y + widthRow/2
		fill(dst, image.Rect(30, mid-f.Widths[i]/2, ToolbarWidth-4, mid-f.Widths[i]/2+max(f.Widths[i], 1)), f.Foreground)
	}
}

func drawStatus(dst *image.RGBA, text string, r image.Rectangle, th *theme.Theme) {
	fill(dst, r, th.StatusBackground)
	label(dst, text, r.Min.X+6, r.Min.Y+15, th.StatusText)
}

func drawPrompt(dst *image.RGBA, text string, area image.Rectangle, th *theme.Theme) {
	d := &font.Drawer{Face: basicfont.Face7x13}
	w := d.MeasureString(text).Ceil()
	c := image.Pt((area.Min.X+area.Max.X)/2, (area.Min.Y+area.Max.Y)/2)
	box := image.Rect(c.X-w/2-12, c.Y-22, c.X+w/2+12, c.Y+22)
	draw.Draw(dst, box, image.NewUniform(color.RGBA{255, 255, 255, 235}), image.Point{}, draw.Over)
	outline(dst, box, th.ButtonBorder)
	label(dst, text, box.Min.X+12, c.Y-4, color.Black)
	hint := "Y: yes    N: no"
	hw := d.MeasureString(hint).Ceil()
	label(dst, hint, c.X-hw/2, c.Y+14, color.Black)
}

func fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func outline(dst *image.RGBA, r image.Rectangle, c color.Color) {
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fill(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fill(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

func label(dst *image.RGBA, text string, x, baseline int, c color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: basicfont.Face7x13, Dot: fixed.P(x, baseline)}
	d.DrawString(text)
}
