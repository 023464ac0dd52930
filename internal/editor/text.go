package editor

import (
	"image"
	"log"

	"github.com/example/easel/internal/raster"
)

type textEdit struct {
	at    image.Point
	runes []rune
	size  float64
}

// TextEdit describes the text waiting to be stamped.
type TextEdit struct {
	At   image.Point
	Text string
	Size float64
}

// BeginText places a text caret at p, replacing any pending text.
func (s *State) BeginText(p image.Point) {
	s.text = &textEdit{at: p, size: raster.DefaultTextSize}
}

// PendingText returns the text being typed, if any.
func (s *State) PendingText() (TextEdit, bool) {
	if s.text == nil {
		return TextEdit{}, false
	}
	return TextEdit{At: s.text.at, Text: string(s.text.runes), Size: s.text.size}, true
}

// TextInput appends r to the pending text.
func (s *State) TextInput(r rune) bool {
	if s.text == nil {
		return false
	}
	s.text.runes = append(s.text.runes, r)
	return true
}

// TextBackspace removes the last typed rune.
func (s *State) TextBackspace() bool {
	if s.text == nil || len(s.text.runes) == 0 {
		return false
	}
	s.text.runes = s.text.runes[:len(s.text.runes)-1]
	return true
}

// FinalizeText stamps the pending text onto the canvas in the foreground
// colour. Empty text is discarded without an undo snapshot.
func (s *State) FinalizeText() bool {
	t := s.text
	s.text = nil
	if t == nil || len(t.runes) == 0 {
		return false
	}
	before := raster.Clone(s.canvas)
	if err := raster.Text(s.canvas, t.at.X, t.at.Y, string(t.runes), s.foreground, t.size); err != nil {
		log.Printf("text: %v", err)
		return false
	}
	s.history.Push(before)
	return true
}

// CancelText drops the pending text.
func (s *State) CancelText() bool {
	if s.text == nil {
		return false
	}
	s.text = nil
	return true
}
