package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func patterned(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 10), uint8(y * 10), uint8(x + y*w), 255})
		}
	}
	return img
}

func TestNewRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want error
	}{
		{"zero width", 0, 10, ErrInvalidSize},
		{"negative height", 10, -1, ErrInvalidSize},
		{"too wide", MaxDimension + 1, 1, ErrTooLarge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img, err := New(tc.w, tc.h, color.White)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if img != nil {
				t.Fatalf("expected no image on error")
			}
		})
	}
}

func TestNewFills(t *testing.T) {
	img, err := New(4, 3, color.RGBA{1, 2, 3, 255})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := img.RGBAAt(3, 2); got != (color.RGBA{1, 2, 3, 255}) {
		t.Fatalf("unexpected fill %v", got)
	}
}

func TestRotations(t *testing.T) {
	src := patterned(3, 2)
	cw := RotateCW(src)
	if cw.Bounds().Dx() != 2 || cw.Bounds().Dy() != 3 {
		t.Fatalf("unexpected size %v", cw.Bounds())
	}
	ccw := RotateCCW(src)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := src.RGBAAt(x, y)
			if got := cw.RGBAAt(1-y, x); got != want {
				t.Errorf("cw (%d,%d): got %v want %v", x, y, got, want)
			}
			if got := ccw.RGBAAt(y, 2-x); got != want {
				t.Errorf("ccw (%d,%d): got %v want %v", x, y, got, want)
			}
		}
	}
	if !Equal(RotateCCW(RotateCW(src)), src) {
		t.Fatalf("cw then ccw should restore the image")
	}
}

func TestFlips(t *testing.T) {
	src := patterned(3, 2)
	h := FlipHorizontal(src)
	v := FlipVertical(src)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := src.RGBAAt(x, y)
			if got := h.RGBAAt(2-x, y); got != want {
				t.Errorf("flip h (%d,%d): got %v want %v", x, y, got, want)
			}
			if got := v.RGBAAt(x, 1-y); got != want {
				t.Errorf("flip v (%d,%d): got %v want %v", x, y, got, want)
			}
		}
	}
}

func TestResizeAnchorsTopLeft(t *testing.T) {
	src := patterned(2, 2)
	bg := color.RGBA{9, 9, 9, 255}
	out, err := Resize(src, 4, 1, bg)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if out.RGBAAt(1, 0) != src.RGBAAt(1, 0) {
		t.Errorf("content moved")
	}
	if out.RGBAAt(3, 0) != bg {
		t.Errorf("new area not background: %v", out.RGBAAt(3, 0))
	}
}

func TestGrowKeepsFittingImage(t *testing.T) {
	src := patterned(5, 5)
	out, err := Grow(src, 3, 5, color.White)
	if err != nil {
		t.Fatalf("Grow: %v", err)
	}
	if out != src {
		t.Fatalf("expected the same surface when it already fits")
	}
	out, err = Grow(src, 3, 8, color.White)
	if err != nil {
		t.Fatalf("Grow: %v", err)
	}
	if out.Bounds().Dx() != 5 || out.Bounds().Dy() != 8 {
		t.Fatalf("unexpected grown size %v", out.Bounds())
	}
}

func TestCropOutsideIsTransparent(t *testing.T) {
	src := patterned(4, 4)
	out := Crop(src, image.Rect(2, 2, 6, 6))
	if out.RGBAAt(0, 0) != src.RGBAAt(2, 2) {
		t.Errorf("crop origin mismatch")
	}
	if out.RGBAAt(3, 3).A != 0 {
		t.Errorf("expected transparent outside source")
	}
}

func TestFillMaskKeepsUnmaskedPixels(t *testing.T) {
	img := patterned(4, 1)
	orig := Clone(img)
	mask := image.NewAlpha(image.Rect(0, 0, 4, 1))
	mask.SetAlpha(0, 0, color.Alpha{255})
	mask.SetAlpha(2, 0, color.Alpha{128})
	blue := color.RGBA{0, 0, 255, 255}
	FillMask(img, img.Bounds(), mask, image.Point{}, blue)
	if img.RGBAAt(0, 0) != blue {
		t.Errorf("masked pixel = %v", img.RGBAAt(0, 0))
	}
	for _, x := range []int{1, 3} {
		if img.RGBAAt(x, 0) != orig.RGBAAt(x, 0) {
			t.Errorf("pixel %d changed to %v", x, img.RGBAAt(x, 0))
		}
	}
	if got := img.RGBAAt(2, 0); got.A != 255 || got == blue || got == orig.RGBAAt(2, 0) {
		t.Errorf("partially masked pixel = %v, want an opaque blend", got)
	}
}

func TestOverBlendsAlpha(t *testing.T) {
	dst, _ := New(2, 1, color.RGBA{0, 0, 255, 255})
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	Over(dst, src, image.Point{})
	if dst.RGBAAt(0, 0) != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("opaque pixel not copied: %v", dst.RGBAAt(0, 0))
	}
	if dst.RGBAAt(1, 0) != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("transparent pixel overwrote destination: %v", dst.RGBAAt(1, 0))
	}
}

func TestFloodFill(t *testing.T) {
	img, _ := New(5, 5, color.White)
	Line(img, 2, 0, 2, 4, color.Black, 1)
	if !FloodFill(img, 0, 0, color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("expected fill to change pixels")
	}
	if img.RGBAAt(1, 4) != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("left side not filled")
	}
	if img.RGBAAt(3, 0) != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("fill crossed the line")
	}
	if FloodFill(img, 0, 0, color.RGBA{255, 0, 0, 255}) {
		t.Errorf("refilling with the same colour should be a no-op")
	}
}

func TestMeasureText(t *testing.T) {
	w, h, base, err := MeasureText("Hello", DefaultTextSize)
	if err != nil {
		t.Fatalf("MeasureText: %v", err)
	}
	if w <= 0 || h <= 0 || base <= 0 || base > h {
		t.Fatalf("unexpected metrics w=%d h=%d base=%d", w, h, base)
	}
}
