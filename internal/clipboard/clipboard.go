// Package clipboard exchanges images with the platform clipboard as PNG.
package clipboard

import (
	"bytes"
	"errors"
	"image"
	"image/png"
)

// ErrNoImage reports a clipboard that holds no image data.
var ErrNoImage = errors.New("clipboard does not contain image data")

// System adapts the platform clipboard to the editor's read/write contract.
type System struct{}

// WriteImage publishes img on the platform clipboard.
func (System) WriteImage(img image.Image) error { return WriteImage(img) }

// ReadImage fetches the current clipboard image.
func (System) ReadImage() (image.Image, error) { return ReadImage() }

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodePNG(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	return png.Decode(bytes.NewReader(data))
}
