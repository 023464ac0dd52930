// Package floating manages pixels lifted off the canvas so they can be moved
// and transformed before being composited back.
package floating

import (
	"image"
	"image/color"

	"github.com/example/easel/internal/raster"
	"github.com/example/easel/internal/selection"
)

// Buffer holds a detached copy of selected pixels. Pixels outside a lasso
// outline are fully transparent.
type Buffer struct {
	img *image.RGBA
}

// New wraps img as a floating buffer. The buffer takes ownership of img.
func New(img *image.RGBA) *Buffer {
	return &Buffer{img: img}
}

// Lift copies the pixels under sel into a new buffer and erases them from
// canvas with bg. The selection is snapped to whole pixels. Degenerate
// selections lift nothing and leave canvas untouched.
func Lift(canvas *image.RGBA, sel *selection.Selection, bg color.Color) (*Buffer, bool) {
	if sel == nil || !sel.Valid() {
		return nil, false
	}
	r := sel.PixelBounds()
	var img *image.RGBA
	if mask := sel.Mask(r); mask != nil {
		img = raster.CropMasked(canvas, r, mask)
		raster.FillMask(canvas, r, mask, image.Point{}, bg)
	} else {
		img = raster.Crop(canvas, r)
		raster.Fill(canvas, r, bg)
	}
	sel.SnapTo(r)
	return &Buffer{img: img}, true
}

// Image returns the buffer pixels. Callers must not keep the image past the
// buffer's lifetime.
func (b *Buffer) Image() *image.RGBA { return b.img }

// Size returns the buffer dimensions.
func (b *Buffer) Size() image.Point { return b.img.Bounds().Size() }

// Clone returns an independent copy of the buffer pixels.
func (b *Buffer) Clone() *image.RGBA { return raster.Clone(b.img) }

// RotateCW turns the buffer 90° clockwise.
func (b *Buffer) RotateCW() { b.img = raster.RotateCW(b.img) }

// RotateCCW turns the buffer 90° counter-clockwise.
func (b *Buffer) RotateCCW() { b.img = raster.RotateCCW(b.img) }

// FlipHorizontal mirrors the buffer left to right.
func (b *Buffer) FlipHorizontal() { b.img = raster.FlipHorizontal(b.img) }

// FlipVertical mirrors the buffer top to bottom.
func (b *Buffer) FlipVertical() { b.img = raster.FlipVertical(b.img) }

// CompositeOnto blends the buffer over canvas with its top-left at at.
func (b *Buffer) CompositeOnto(canvas *image.RGBA, at image.Point) {
	raster.Over(canvas, b.img, at)
}
