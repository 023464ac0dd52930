//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"errors"
	"image"
)

var errUnsupported = errors.New("clipboard image operations are not supported on this platform")

// WriteImage always fails on unsupported platforms.
func WriteImage(image.Image) error { return errUnsupported }

// ReadImage always fails on unsupported platforms.
func ReadImage() (image.Image, error) { return nil, errUnsupported }
