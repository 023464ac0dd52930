package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/easel/internal/selection"
	"github.com/example/easel/internal/theme"
)

var (
	light = color.RGBA{255, 255, 255, 255}
	dark  = color.RGBA{0, 0, 0, 255}
)

func TestDashedLinePattern(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 1))
	end := DashedLine(img, 0, 0, 15, 0, AntDash, 0, light, dark)
	if end != 16 {
		t.Fatalf("step = %d", end)
	}
	for x := 0; x < 16; x++ {
		want := light
		if (x/4)%2 == 1 {
			want = dark
		}
		if got := img.RGBAAt(x, 0); got != want {
			t.Fatalf("pixel %d = %v, want %v", x, got, want)
		}
	}
}

func TestAntsPhaseShifts(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 1))
	Ants(img, []image.Point{{0, 0}, {15, 0}}, false, 4, light, dark)
	if img.RGBAAt(0, 0) != dark || img.RGBAAt(4, 0) != light {
		t.Fatalf("phase 4 did not swap dash colours")
	}
	if NextPhase(AntPeriod-1) != 0 {
		t.Fatalf("phase did not wrap")
	}
}

func TestAntsContinueAcrossCorners(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	Ants(img, []image.Point{{0, 0}, {2, 0}, {2, 7}}, false, 0, light, dark)
	// pixels along the path: (0,0) (1,0) (2,0) (2,1) are dash one
	if img.RGBAAt(2, 1) != light || img.RGBAAt(2, 2) != dark {
		t.Fatalf("dash restarted at the corner")
	}
}

func TestAntsRectDrawsInsideEdge(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	AntsRect(img, image.Rect(2, 2, 6, 6), 0, light, dark)
	if img.RGBAAt(2, 2).A == 0 || img.RGBAAt(5, 5).A == 0 {
		t.Fatalf("corners not drawn")
	}
	if img.RGBAAt(6, 6).A != 0 || img.RGBAAt(3, 3).A != 0 {
		t.Fatalf("drew outside the edge or inside the box")
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Origin: image.Pt(84, 10), Zoom: 0.5}
	p := v.ToCanvas(84+50, 10+20)
	if p != (selection.Point{X: 100, Y: 40}) {
		t.Fatalf("ToCanvas = %+v", p)
	}
	if got := v.ToScreen(p); got != image.Pt(134, 30) {
		t.Fatalf("ToScreen = %v", got)
	}
	if r := v.Rect(image.Pt(200, 100)); r != image.Rect(84, 10, 184, 60) {
		t.Fatalf("Rect = %v", r)
	}
	if (Viewport{}).ToCanvas(3, 4) != (selection.Point{X: 3, Y: 4}) {
		t.Fatalf("zero zoom should act as 1")
	}
}

func TestFitZoom(t *testing.T) {
	tests := []struct {
		size  image.Point
		avail image.Rectangle
		want  float64
	}{
		{image.Pt(100, 100), image.Rect(0, 0, 400, 400), 1},
		{image.Pt(800, 400), image.Rect(0, 0, 400, 400), 0.5},
		{image.Pt(100, 400), image.Rect(0, 0, 400, 200), 0.5},
		{image.Pt(0, 10), image.Rect(0, 0, 10, 10), 1},
	}
	for _, tt := range tests {
		if got := FitZoom(tt.size, tt.avail); got != tt.want {
			t.Errorf("FitZoom(%v, %v) = %v, want %v", tt.size, tt.avail, got, tt.want)
		}
	}
}

func TestLayoutHit(t *testing.T) {
	l := NewLayout(image.Pt(640, 480), 3, 4, 2)
	if len(l.Tools) != 3 || len(l.Palette) != 4 || len(l.Widths) != 2 {
		t.Fatalf("layout = %+v", l)
	}
	if i := Hit(l.Tools, image.Pt(10, buttonHeight+1)); i != 1 {
		t.Fatalf("Hit tools = %d", i)
	}
	if i := Hit(l.Palette, l.Palette[3].Min); i != 3 {
		t.Fatalf("Hit palette = %d", i)
	}
	if Hit(l.Tools, image.Pt(300, 300)) != -1 {
		t.Fatalf("canvas point hit a tool")
	}
	if l.Canvas.Min.X != ToolbarWidth || l.Status.Max.Y != 480 {
		t.Fatalf("canvas %v status %v", l.Canvas, l.Status)
	}
}

func TestDrawFrame(t *testing.T) {
	size := image.Pt(300, 200)
	dst := image.NewRGBA(image.Rectangle{Max: size})
	view := image.NewRGBA(image.Rect(0, 0, 20, 20))
	red := color.RGBA{255, 0, 0, 255}
	for i := range view.Pix {
		view.Pix[i] = []uint8{255, 0, 0, 255}[i%4]
	}
	l := NewLayout(size, 2, 2, 0)
	th := theme.Default()
	f := Frame{
		Size:       size,
		View:       view,
		Viewport:   Viewport{Origin: image.Pt(100, 20), Zoom: 2},
		Outline:    []selection.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		Closed:     true,
		Tools:      []string{"select", "pencil"},
		HoverTool:  -1,
		Palette:    []color.RGBA{red, dark},
		Foreground: dark,
		Background: light,
		Status:     "20x20",
		Theme:      th,
	}
	Draw(dst, f, l, &Backdrop{})
	if got := dst.RGBAAt(130, 50); got != red {
		t.Fatalf("canvas pixel = %v", got)
	}
	if got := dst.RGBAAt(100, 20); got != th.AntsLight {
		t.Fatalf("ants corner = %v", got)
	}
	if got := dst.RGBAAt(l.Palette[0].Min.X+4, l.Palette[0].Min.Y+4); got != red {
		t.Fatalf("palette swatch = %v", got)
	}
}
