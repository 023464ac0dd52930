package editor

import (
	"fmt"
	"image"
	"log"

	"github.com/example/easel/internal/floating"
	"github.com/example/easel/internal/raster"
	"github.com/example/easel/internal/selection"
)

// Copy places the selected pixels, or the floating buffer, on the clipboard.
// Pixels outside a lasso outline are transparent.
func (s *State) Copy() bool {
	img := s.selectedPixels()
	if img == nil {
		return false
	}
	s.clip = img
	if s.system != nil {
		if err := s.system.WriteImage(img); err != nil {
			log.Printf("copy: %v", err)
		}
	}
	return true
}

func (s *State) selectedPixels() *image.RGBA {
	if s.float != nil {
		return s.float.Clone()
	}
	if s.sel == nil || !s.sel.Valid() {
		return nil
	}
	r := s.sel.PixelBounds()
	if mask := s.sel.Mask(r); mask != nil {
		return raster.CropMasked(s.canvas, r, mask)
	}
	return raster.Crop(s.canvas, r)
}

// Cut copies the selection and removes it. A floating buffer is simply
// dropped since its hole is already punched; otherwise the region is filled
// with the background after an undo snapshot.
func (s *State) Cut() bool {
	if !s.Copy() {
		return false
	}
	return s.Erase()
}

// Erase removes the selected pixels without touching the clipboard.
func (s *State) Erase() bool {
	if s.float != nil {
		// a lifted buffer already left its hole; a pasted one never landed
		s.dropSelection()
		return true
	}
	if s.sel == nil || !s.sel.Valid() {
		return false
	}
	s.history.Push(s.canvas)
	r := s.sel.PixelBounds()
	if mask := s.sel.Mask(r); mask != nil {
		raster.FillMask(s.canvas, r, mask, image.Point{}, s.background)
	} else {
		raster.Fill(s.canvas, r, s.background)
	}
	s.dropSelection()
	return true
}

// Paste turns the clipboard image into a fresh floating selection at the
// paste offset. The platform clipboard wins over the private slot. When the
// image overflows the canvas the confirm prompt decides whether the canvas
// grows to fit it.
func (s *State) Paste() bool {
	img := s.clipboardImage()
	if img == nil {
		return false
	}
	if s.float != nil {
		s.Commit(true)
	}
	s.dropSelection()

	size := img.Bounds().Size()
	at := s.pasteOffset
	need := at.Add(size)
	cur := s.Size()
	if (need.X > cur.X || need.Y > cur.Y) && s.confirm != nil {
		prompt := fmt.Sprintf("The pasted image is %dx%d. Expand the canvas to fit it?", size.X, size.Y)
		if s.confirm(prompt) {
			grown, err := raster.Grow(s.canvas, need.X, need.Y, s.background)
			if err != nil {
				log.Printf("paste: %v", err)
			} else {
				s.history.Push(s.canvas)
				s.canvas = grown
			}
		}
	}

	s.sel = selection.FromRectangle(image.Rectangle{Min: at, Max: need})
	s.float = floating.New(img)
	s.dragCompleted = false
	return true
}

func (s *State) clipboardImage() *image.RGBA {
	if s.system != nil {
		img, err := s.system.ReadImage()
		switch {
		case err != nil:
			log.Printf("paste: %v", err)
		case img != nil:
			b := img.Bounds()
			if raster.CheckSize(b.Dx(), b.Dy()) == nil {
				return raster.ToRGBA(img)
			}
		}
	}
	if s.clip == nil {
		return nil
	}
	return raster.Clone(s.clip)
}
