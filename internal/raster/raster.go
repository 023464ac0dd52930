// Package raster holds the pixel-level primitives that operate on the editor
// canvas. Every function works on *image.RGBA with its origin at (0, 0).
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// MaxDimension bounds either side of a surface. Requests above it are
// treated like a failed allocation.
const MaxDimension = 16384

var (
	// ErrInvalidSize reports a width or height below one pixel.
	ErrInvalidSize = errors.New("surface dimensions must be positive")
	// ErrTooLarge reports a surface that could not be allocated.
	ErrTooLarge = errors.New("surface dimensions exceed the allocation limit")
)

// CheckSize validates a surface size before anything is allocated.
func CheckSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%dx%d: %w", w, h, ErrInvalidSize)
	}
	if w > MaxDimension || h > MaxDimension {
		return fmt.Errorf("%dx%d: %w", w, h, ErrTooLarge)
	}
	return nil
}

// New allocates a w×h surface filled with fill.
func New(w, h int, fill color.Color) (*image.RGBA, error) {
	if err := CheckSize(w, h); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	Fill(img, img.Bounds(), fill)
	return img, nil
}

// Clone returns a deep copy of img.
func Clone(img *image.RGBA) *image.RGBA {
	if img == nil {
		return nil
	}
	out := &image.RGBA{
		Pix:    make([]uint8, len(img.Pix)),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	copy(out.Pix, img.Pix)
	return out
}

// ToRGBA copies any image into a fresh RGBA surface anchored at the origin.
func ToRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	return out
}

// Equal reports whether two surfaces have the same size and pixels.
func Equal(a, b *image.RGBA) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Bounds().Size() != b.Bounds().Size() {
		return false
	}
	w, h := a.Bounds().Dx(), a.Bounds().Dy()
	for y := 0; y < h; y++ {
		ra := a.Pix[a.PixOffset(a.Rect.Min.X, a.Rect.Min.Y+y):][:w*4]
		rb := b.Pix[b.PixOffset(b.Rect.Min.X, b.Rect.Min.Y+y):][:w*4]
		for i := range ra {
			if ra[i] != rb[i] {
				return false
			}
		}
	}
	return true
}

// Crop returns a copy of rect from img. Parts of rect outside img stay
// transparent.
func Crop(img *image.RGBA, rect image.Rectangle) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	src := rect.Intersect(img.Bounds())
	if !src.Empty() {
		draw.Draw(out, src.Sub(rect.Min), img, src.Min, draw.Src)
	}
	return out
}

// CropMasked copies rect from img through mask. The mask is addressed in the
// same coordinates as the returned image, so pixels where it is transparent
// stay transparent.
func CropMasked(img *image.RGBA, rect image.Rectangle, mask image.Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	src := rect.Intersect(img.Bounds())
	if !src.Empty() {
		dr := src.Sub(rect.Min)
		draw.DrawMask(out, dr, img, src.Min, mask, dr.Min, draw.Src)
	}
	return out
}

// Fill paints rect with c, replacing what was there.
func Fill(img *image.RGBA, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillMask paints c into rect in proportion to mask coverage. Pixels the mask
// leaves clear keep their colour. mp is the mask point aligned with rect.Min.
func FillMask(img *image.RGBA, rect image.Rectangle, mask image.Image, mp image.Point, c color.Color) {
	clipped := rect.Intersect(img.Bounds())
	if clipped.Empty() {
		return
	}
	mp = mp.Add(clipped.Min.Sub(rect.Min))
	draw.DrawMask(img, clipped, image.NewUniform(c), image.Point{}, mask, mp, draw.Over)
}

// Over composites src onto dst with its top-left corner at at.
func Over(dst, src *image.RGBA, at image.Point) {
	r := src.Bounds().Sub(src.Bounds().Min).Add(at)
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
}

// Grow returns a copy of img enlarged to at least w×h. New area is painted
// with fill and existing pixels keep their coordinates. img is returned
// unchanged when it already fits.
func Grow(img *image.RGBA, w, h int, fill color.Color) (*image.RGBA, error) {
	b := img.Bounds()
	if w <= b.Dx() && h <= b.Dy() {
		return img, nil
	}
	return Resize(img, max(w, b.Dx()), max(h, b.Dy()), fill)
}

// Resize changes the canvas size without scaling. Content stays anchored at
// the top-left; uncovered area is painted with fill.
func Resize(img *image.RGBA, w, h int, fill color.Color) (*image.RGBA, error) {
	out, err := New(w, h, fill)
	if err != nil {
		return nil, err
	}
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out, nil
}

// Scale resamples img to w×h using bilinear filtering.
func Scale(img *image.RGBA, w, h int) (*image.RGBA, error) {
	if err := CheckSize(w, h); err != nil {
		return nil, err
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out, nil
}

func transform(img *image.RGBA, w, h int, m f64.Aff3) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Transform(out, m, img, img.Bounds(), draw.Src, nil)
	return out
}

// RotateCW returns img rotated 90° clockwise.
func RotateCW(img *image.RGBA) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	return transform(img, h, w, f64.Aff3{0, -1, float64(h), 1, 0, 0})
}

// RotateCCW returns img rotated 90° counter-clockwise.
func RotateCCW(img *image.RGBA) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	return transform(img, h, w, f64.Aff3{0, 1, 0, -1, 0, float64(w)})
}

// FlipHorizontal mirrors img around its vertical axis.
func FlipHorizontal(img *image.RGBA) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	return transform(img, w, h, f64.Aff3{-1, 0, float64(w), 0, 1, 0})
}

// FlipVertical mirrors img around its horizontal axis.
func FlipVertical(img *image.RGBA) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	return transform(img, w, h, f64.Aff3{1, 0, 0, 0, -1, float64(h)})
}
