package editor

import (
	"fmt"
	"image"

	"github.com/example/easel/internal/raster"
)

// PushUndo records the current canvas. Tools call it once per destructive
// action, never per pointer motion sample.
func (s *State) PushUndo() {
	s.history.Push(s.canvas)
}

// Undo restores the previous snapshot. Selection, floating and text state
// refer to the replaced canvas and are dropped.
func (s *State) Undo() bool {
	prev, ok := s.history.Undo(s.canvas)
	if !ok {
		return false
	}
	s.install(prev)
	return true
}

// Redo reapplies the last undone change.
func (s *State) Redo() bool {
	next, ok := s.history.Redo(s.canvas)
	if !ok {
		return false
	}
	s.install(next)
	return true
}

// install swaps in a new canvas and clears everything that pointed into the
// old one.
func (s *State) install(canvas *image.RGBA) {
	s.canvas = canvas
	s.dropSelection()
	s.text = nil
	s.pressed = false
	s.stroke = stroke{}
}

// beforeReplace commits a floating buffer and snapshots the canvas ahead of
// a whole-image operation.
func (s *State) beforeReplace() {
	if s.float != nil {
		s.Commit(true)
	}
	s.history.Push(s.canvas)
}

// NewImage replaces the canvas with a blank w×h surface painted with the
// background.
func (s *State) NewImage(w, h int) error {
	img, err := raster.New(w, h, s.background)
	if err != nil {
		return fmt.Errorf("new image: %w", err)
	}
	s.beforeReplace()
	s.install(img)
	return nil
}

// OpenImage replaces the canvas with a copy of img.
func (s *State) OpenImage(img image.Image) error {
	if img == nil {
		return fmt.Errorf("open image: %w", raster.ErrInvalidSize)
	}
	b := img.Bounds()
	if err := raster.CheckSize(b.Dx(), b.Dy()); err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	s.beforeReplace()
	s.install(raster.ToRGBA(img))
	return nil
}

// Scale resamples the canvas to w×h.
func (s *State) Scale(w, h int) error {
	if err := raster.CheckSize(w, h); err != nil {
		return fmt.Errorf("scale: %w", err)
	}
	s.beforeReplace()
	img, err := raster.Scale(s.canvas, w, h)
	if err != nil {
		return fmt.Errorf("scale: %w", err)
	}
	s.install(img)
	return nil
}

// ResizeCanvas changes the canvas size without scaling the content, which
// stays anchored at the top-left. New area is painted with the background.
func (s *State) ResizeCanvas(w, h int) error {
	if err := raster.CheckSize(w, h); err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	s.beforeReplace()
	img, err := raster.Resize(s.canvas, w, h, s.background)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	s.install(img)
	return nil
}
