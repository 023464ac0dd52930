package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultTextSize is the point size used by the text tool.
const DefaultTextSize = 20

var (
	fontOnce  sync.Once
	fontErr   error
	regular   *opentype.Font
	faceCache sync.Map // map[float64]font.Face
)

func faceForSize(size float64) (font.Face, error) {
	if size <= 0 {
		size = DefaultTextSize
	}
	fontOnce.Do(func() {
		regular, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("text font not initialised: %w", fontErr)
	}
	size = math.Round(size*100) / 100
	if face, ok := faceCache.Load(size); ok {
		return face.(font.Face), nil
	}
	face, err := opentype.NewFace(regular, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	faceCache.Store(size, face)
	return face, nil
}

// MeasureText returns the bounding box of text at size. baseline is the
// offset from the top of the box to the text baseline.
func MeasureText(text string, size float64) (width, height, baseline int, err error) {
	face, err := faceForSize(size)
	if err != nil {
		return 0, 0, 0, err
	}
	width = (&font.Drawer{Face: face}).MeasureString(text).Ceil()
	m := face.Metrics()
	baseline = m.Ascent.Ceil()
	height = baseline + m.Descent.Ceil()
	return width, height, baseline, nil
}

// Text draws text with the top-left of its box at (x, y).
func Text(img *image.RGBA, x, y int, text string, col color.Color, size float64) error {
	face, err := faceForSize(size)
	if err != nil {
		return err
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	return nil
}
