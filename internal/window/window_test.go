package window

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"

	"github.com/example/easel/internal/config"
	"github.com/example/easel/internal/editor"
	"github.com/example/easel/internal/selection"
)

type queue struct {
	events []interface{}
	sent   []interface{}
}

func (q *queue) NextEvent() interface{} {
	if len(q.events) == 0 {
		return lifecycle.Event{To: lifecycle.StageDead}
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e
}

func (q *queue) Send(e interface{}) { q.sent = append(q.sent, e) }

func newWindow(t *testing.T, w, h int, opts ...Option) (*Window, *editor.State) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	ed, err := editor.New(img)
	if err != nil {
		t.Fatalf("editor.New: %v", err)
	}
	return New(ed, opts...), ed
}

func press(r rune, mods key.Modifiers) key.Event {
	return key.Event{Rune: r, Modifiers: mods, Direction: key.DirPress}
}

func pressCode(c key.Code) key.Event {
	return key.Event{Rune: -1, Code: c, Direction: key.DirPress}
}

func mouseAt(p image.Point, b mouse.Button, d mouse.Direction) mouse.Event {
	return mouse.Event{X: float32(p.X), Y: float32(p.Y), Button: b, Direction: d}
}

func centre(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func TestShortcutNormalisation(t *testing.T) {
	tests := []struct {
		name string
		in   key.Event
		want KeyShortcut
	}{
		{"shifted letter", press('R', key.ModShift), shifted('r')},
		{"shifted punctuation", press('+', key.ModShift), plain('+')},
		{"control character", key.Event{Rune: 3, Code: key.CodeC, Modifiers: key.ModControl}, ctrl('c')},
		{"code", pressCode(key.CodeEscape), code(key.CodeEscape)},
		{"ignored modifiers", press('h', key.ModAlt), plain('h')},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shortcutOf(tt.in); got != tt.want {
				t.Errorf("shortcutOf = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToolbarClicks(t *testing.T) {
	w, ed := newWindow(t, 100, 80)
	w.handle(mouseAt(centre(w.layout.Tools[2]), mouse.ButtonLeft, mouse.DirPress))
	if ed.Tool().Name() != w.tools[2].Name() {
		t.Fatalf("tool = %s", ed.Tool().Name())
	}
	w.handle(mouseAt(centre(w.layout.Palette[2]), mouse.ButtonLeft, mouse.DirPress))
	w.handle(mouseAt(centre(w.layout.Palette[4]), mouse.ButtonRight, mouse.DirPress))
	if ed.Foreground() != Palette[2] || ed.Background() != Palette[4] {
		t.Fatalf("fg %v bg %v", ed.Foreground(), ed.Background())
	}
	w.handle(mouseAt(centre(w.layout.Widths[3]), mouse.ButtonLeft, mouse.DirPress))
	if ed.LineWidth() != LineWidths[3] {
		t.Fatalf("line width = %d", ed.LineWidth())
	}
}

func TestCanvasDragSelects(t *testing.T) {
	w, ed := newWindow(t, 100, 80)
	w.handle(press('s', 0))
	vp := w.viewport()
	from := vp.ToScreen(selection.Point{X: 10, Y: 10})
	to := vp.ToScreen(selection.Point{X: 40, Y: 30})
	w.handle(mouseAt(from, mouse.ButtonLeft, mouse.DirPress))
	w.handle(mouseAt(to, mouse.ButtonNone, mouse.DirNone))
	if !ed.Capturing() {
		t.Fatalf("drag did not start a capture")
	}
	w.handle(mouseAt(to, mouse.ButtonLeft, mouse.DirRelease))
	sel := ed.Selection()
	if sel == nil {
		t.Fatalf("no selection after drag")
	}
	if r := sel.PixelBounds(); r != image.Rect(10, 10, 40, 30) {
		t.Fatalf("selection = %v", r)
	}
	if !w.animating.Load() {
		t.Fatalf("ants not animating with a selection")
	}
	w.handle(pressCode(key.CodeEscape))
	if ed.Selection() != nil || w.animating.Load() {
		t.Fatalf("escape did not clear the selection")
	}
}

func TestKeyboardSelectionOps(t *testing.T) {
	w, ed := newWindow(t, 40, 20)
	w.handle(press('a', key.ModControl))
	if ed.Selection() == nil {
		t.Fatalf("ctrl+a selected nothing")
	}
	w.handle(press('c', key.ModControl))
	if ed.ClipboardImage() == nil {
		t.Fatalf("ctrl+c copied nothing")
	}
	w.handle(press('r', 0))
	if ed.Floating() == nil || ed.Floating().Size() != image.Pt(20, 40) {
		t.Fatalf("r did not rotate the selection")
	}
	w.handle(pressCode(key.CodeEscape))
	if ed.Floating() != nil {
		t.Fatalf("escape did not cancel the floating buffer")
	}
	w.handle(press('z', key.ModControl))
	if ed.History().Len() != 0 {
		t.Fatalf("undo left %d snapshots", ed.History().Len())
	}
}

func TestPasteExpandPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy config.ExpandPolicy
		queued []interface{}
		want   image.Point
	}{
		{"always", config.ExpandAlways, nil, image.Pt(60, 50)},
		{"never", config.ExpandNever, nil, image.Pt(40, 30)},
		{"ask yes", config.ExpandAsk, []interface{}{paint.Event{}, press('y', 0)}, image.Pt(60, 50)},
		{"ask no", config.ExpandAsk, []interface{}{press('n', 0)}, image.Pt(40, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ed := newWindow(t, 40, 30, WithExpandPolicy(tt.policy))
			q := &queue{events: tt.queued}
			w.events = q
			paints := 0
			prompts := 0
			w.paint = func() {
				paints++
				if w.prompt != "" {
					prompts++
				}
			}
			w.handle(press('a', key.ModControl))
			w.handle(press('c', key.ModControl))
			w.handle(press('v', key.ModControl))
			if got := ed.Size(); got != tt.want {
				t.Fatalf("canvas = %v, want %v", got, tt.want)
			}
			if ed.Floating() == nil {
				t.Fatalf("paste did not float the image")
			}
			if tt.policy == config.ExpandAsk && prompts == 0 {
				t.Fatalf("prompt never shown")
			}
			if w.prompt != "" || len(q.events) != 0 {
				t.Fatalf("prompt %q left with %d queued events", w.prompt, len(q.events))
			}
		})
	}
}

func TestTextTyping(t *testing.T) {
	w, ed := newWindow(t, 100, 60)
	w.handle(press('t', 0))
	at := w.viewport().ToScreen(selection.Point{X: 5, Y: 5})
	w.handle(mouseAt(at, mouse.ButtonLeft, mouse.DirPress))
	w.handle(mouseAt(at, mouse.ButtonLeft, mouse.DirRelease))
	for _, r := range "hi r" {
		w.handle(press(r, 0))
	}
	w.handle(pressCode(key.CodeDeleteBackspace))
	pending, ok := ed.PendingText()
	if !ok || pending.Text != "hi " {
		t.Fatalf("pending = %+v, %v", pending, ok)
	}
	if ed.Tool().Name() != "text" {
		t.Fatalf("typing switched tools to %s", ed.Tool().Name())
	}
	w.handle(pressCode(key.CodeReturnEnter))
	if _, ok := ed.PendingText(); ok || ed.History().Len() != 1 {
		t.Fatalf("enter did not stamp the text")
	}
}

func TestTickAdvancesOnlyWhileAnimating(t *testing.T) {
	w, ed := newWindow(t, 20, 20)
	w.handle(tickEvent{})
	if w.phase != 0 {
		t.Fatalf("phase moved without a selection")
	}
	ed.SelectAll()
	w.handle(tickEvent{})
	w.handle(tickEvent{})
	if w.phase != 2 {
		t.Fatalf("phase = %d", w.phase)
	}
}

func TestQuitShortcut(t *testing.T) {
	w, _ := newWindow(t, 10, 10)
	w.handle(press('q', key.ModControl))
	if !w.closed {
		t.Fatalf("ctrl+q did not close")
	}
}

func TestFrameReflectsState(t *testing.T) {
	w, ed := newWindow(t, 30, 30)
	ed.SetForeground(color.RGBA{1, 2, 3, 255})
	ed.SelectAll()
	f := w.frame()
	if f.Foreground != ed.Foreground() || len(f.Outline) != 4 || !f.Closed {
		t.Fatalf("frame = %+v", f)
	}
	if f.ActiveTool < 0 || f.Tools[f.ActiveTool] != ed.Tool().Name() {
		t.Fatalf("active tool %d", f.ActiveTool)
	}
}
