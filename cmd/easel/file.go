package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// loadImage decodes any registered format.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(f)
	if cerr := f.Close(); cerr != nil {
		log.Printf("error closing %q: %v", path, cerr)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// encoderFor picks the encoder from the file extension, defaulting to PNG.
func encoderFor(path string) func(io.Writer, image.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 92})
		}
	case ".bmp":
		return bmp.Encode
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}
	default:
		return png.Encode
	}
}

// saveImage writes img to path in the format implied by its extension.
func saveImage(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encoderFor(path)(out, img); err != nil {
		if cerr := out.Close(); cerr != nil {
			log.Printf("error closing %q: %v", path, cerr)
		}
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}
