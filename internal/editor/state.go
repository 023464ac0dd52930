// Package editor implements the editing engine: the canvas, the selection
// lifecycle with its floating buffer, the clipboard bridge, undo history and
// the drawing tools that act on pointer input. A State is driven by a single
// goroutine; it does no locking of its own.
package editor

import (
	"image"
	"image/color"

	"github.com/example/easel/internal/floating"
	"github.com/example/easel/internal/history"
	"github.com/example/easel/internal/raster"
	"github.com/example/easel/internal/selection"
)

// Default canvas size used when no image is supplied.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// DefaultPasteOffset is where pasted images are placed.
var DefaultPasteOffset = image.Pt(20, 20)

// Clipboard is the platform image clipboard.
type Clipboard interface {
	WriteImage(img image.Image) error
	ReadImage() (image.Image, error)
}

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer func(prompt string) bool

// Phase is the selection controller state derived from the editor fields.
type Phase int

const (
	// PhaseIdle means nothing is selected.
	PhaseIdle Phase = iota
	// PhaseSelected means a region is marked but still part of the canvas.
	PhaseSelected
	// PhaseFloating means selected pixels are lifted into a buffer.
	PhaseFloating
	// PhaseDragging means a floating buffer follows the pointer.
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseSelected:
		return "selected"
	case PhaseFloating:
		return "floating"
	case PhaseDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// State is the complete editor state. The zero value is not usable; call New.
type State struct {
	canvas     *image.RGBA
	background color.RGBA
	foreground color.RGBA
	lineWidth  int

	sel           *selection.Selection
	float         *floating.Buffer
	capture       *capture
	dragging      bool
	dragOffset    selection.Point
	dragCompleted bool
	// undoPushed is set once a snapshot covers the current floating session.
	undoPushed bool

	history     *history.Stack
	clip        *image.RGBA
	system      Clipboard
	confirm     Confirmer
	pasteOffset image.Point

	tool    Tool
	pressed bool
	stroke  stroke
	text    *textEdit
}

// Option configures a State during creation.
type Option func(*State)

// WithBackground sets the background colour used for erased areas.
func WithBackground(c color.Color) Option {
	return func(s *State) { s.background = toRGBA(c) }
}

// WithForeground sets the drawing colour.
func WithForeground(c color.Color) Option {
	return func(s *State) { s.foreground = toRGBA(c) }
}

// WithUndoDepth sets how many snapshots are kept.
func WithUndoDepth(n int) Option {
	return func(s *State) { s.history = history.New(n) }
}

// WithClipboard connects the platform clipboard.
func WithClipboard(c Clipboard) Option {
	return func(s *State) { s.system = c }
}

// WithConfirm installs the yes/no prompt used before growing the canvas.
func WithConfirm(fn Confirmer) Option {
	return func(s *State) { s.confirm = fn }
}

// WithPasteOffset overrides where pasted images land.
func WithPasteOffset(p image.Point) Option {
	return func(s *State) { s.pasteOffset = p }
}

// WithLineWidth sets the stroke width for tools that support it.
func WithLineWidth(w int) Option {
	return func(s *State) { s.lineWidth = max(w, 1) }
}

// WithTool selects the initial tool.
func WithTool(t Tool) Option {
	return func(s *State) {
		if t != nil {
			s.tool = t
		}
	}
}

// New creates an editor around a copy of img. A nil img starts with a blank
// canvas of DefaultWidth×DefaultHeight painted with the background.
func New(img image.Image, opts ...Option) (*State, error) {
	s := &State{
		background:  color.RGBA{255, 255, 255, 255},
		foreground:  color.RGBA{0, 0, 0, 255},
		lineWidth:   1,
		history:     history.New(history.DefaultCapacity),
		pasteOffset: DefaultPasteOffset,
		tool:        RectSelect{},
	}
	for _, o := range opts {
		o(s)
	}
	if img == nil {
		canvas, err := raster.New(DefaultWidth, DefaultHeight, s.background)
		if err != nil {
			return nil, err
		}
		s.canvas = canvas
		return s, nil
	}
	b := img.Bounds()
	if err := raster.CheckSize(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	s.canvas = raster.ToRGBA(img)
	return s, nil
}

// Canvas returns the live canvas. It is replaced, not resized, by whole-image
// operations, so callers must not hold on to it across edits.
func (s *State) Canvas() *image.RGBA { return s.canvas }

// Size returns the canvas dimensions.
func (s *State) Size() image.Point { return s.canvas.Bounds().Size() }

// Background returns the background colour.
func (s *State) Background() color.RGBA { return s.background }

// Foreground returns the drawing colour.
func (s *State) Foreground() color.RGBA { return s.foreground }

// SetBackground changes the background colour.
func (s *State) SetBackground(c color.Color) { s.background = toRGBA(c) }

// SetForeground changes the drawing colour.
func (s *State) SetForeground(c color.Color) { s.foreground = toRGBA(c) }

// LineWidth returns the stroke width.
func (s *State) LineWidth() int { return s.lineWidth }

// SetLineWidth changes the stroke width; values below one are clamped.
func (s *State) SetLineWidth(w int) { s.lineWidth = max(w, 1) }

// SetConfirm replaces the yes/no prompt.
func (s *State) SetConfirm(fn Confirmer) { s.confirm = fn }

// History exposes the undo stack for inspection.
func (s *State) History() *history.Stack { return s.history }

// Selection returns the current selection, or nil.
func (s *State) Selection() *selection.Selection { return s.sel }

// Floating returns the floating buffer, or nil.
func (s *State) Floating() *floating.Buffer { return s.float }

// DragCompleted reports whether the floating buffer has been dropped at
// least once since it was created.
func (s *State) DragCompleted() bool { return s.dragCompleted }

// ClipboardImage returns the private clipboard slot.
func (s *State) ClipboardImage() *image.RGBA { return s.clip }

// Phase derives the controller state.
func (s *State) Phase() Phase {
	switch {
	case s.float != nil && s.dragging:
		return PhaseDragging
	case s.float != nil:
		return PhaseFloating
	case s.sel != nil:
		return PhaseSelected
	default:
		return PhaseIdle
	}
}

// Animating reports whether a selection outline is on screen and the
// marching ants should advance.
func (s *State) Animating() bool {
	return s.Phase() != PhaseIdle || s.capture != nil
}

// FloatOrigin returns where the floating buffer is composited.
func (s *State) FloatOrigin() image.Point {
	if s.sel == nil {
		return image.Point{}
	}
	return s.sel.PixelBounds().Min
}

// Flatten returns a copy of the canvas with the floating buffer composited
// at its current position.
func (s *State) Flatten() *image.RGBA {
	out := raster.Clone(s.canvas)
	if s.float != nil {
		s.float.CompositeOnto(out, s.FloatOrigin())
	}
	return out
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
