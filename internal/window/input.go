package window

import (
	"image"
	"unicode"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/easel/internal/editor"
	"github.com/example/easel/internal/render"
)

// handleInput routes mouse and key events and reports whether a repaint is
// needed.
func (w *Window) handleInput(e interface{}) bool {
	switch e := e.(type) {
	case mouse.Event:
		return w.handleMouse(e)
	case key.Event:
		return w.handleKey(e)
	}
	return false
}

func (w *Window) handleMouse(e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	if !w.down && p.X < render.ToolbarWidth && p.Y < w.layout.Status.Min.Y {
		return w.handleToolbar(e, p)
	}
	if w.hoverTool != -1 {
		w.hoverTool = -1
		if e.Direction == mouse.DirNone && !w.down {
			return true
		}
	}

	ev := editor.Pointer{
		Pos:   w.viewport().ToCanvas(e.X, e.Y),
		Shift: e.Modifiers&key.ModShift != 0,
	}
	switch e.Direction {
	case mouse.DirPress:
		b, ok := buttonOf(e.Button)
		if !ok || w.down {
			return false
		}
		w.down, w.button = true, b
		ev.Button = b
		w.ed.PointerDown(ev)
		return true
	case mouse.DirNone:
		if !w.down {
			return false
		}
		ev.Button = w.button
		w.ed.PointerMove(ev)
		return true
	case mouse.DirRelease:
		if !w.down {
			return false
		}
		if b, ok := buttonOf(e.Button); ok && b != w.button {
			return false
		}
		ev.Button = w.button
		w.down = false
		w.ed.PointerUp(ev)
		return true
	}
	return false
}

func buttonOf(b mouse.Button) (editor.Button, bool) {
	switch b {
	case mouse.ButtonLeft:
		return editor.Primary, true
	case mouse.ButtonRight:
		return editor.Secondary, true
	}
	return 0, false
}

// handleToolbar handles clicks on tool buttons, palette swatches and line
// widths.
func (w *Window) handleToolbar(e mouse.Event, p image.Point) bool {
	hover := render.Hit(w.layout.Tools, p)
	changed := hover != w.hoverTool
	w.hoverTool = hover
	if e.Direction != mouse.DirPress {
		return changed
	}
	if i := hover; i >= 0 && i < len(w.tools) && e.Button == mouse.ButtonLeft {
		w.ed.SetTool(w.tools[i])
		return true
	}
	if i := render.Hit(w.layout.Palette, p); i >= 0 && i < len(Palette) {
		switch e.Button {
		case mouse.ButtonLeft:
			w.ed.SetForeground(Palette[i])
		case mouse.ButtonRight:
			w.ed.SetBackground(Palette[i])
		}
		return true
	}
	if i := render.Hit(w.layout.Widths, p); i >= 0 && i < len(LineWidths) && w.ed.Tool().SupportsLineWidth() {
		w.ed.SetLineWidth(LineWidths[i])
		return true
	}
	return changed
}

func (w *Window) handleKey(e key.Event) bool {
	if e.Direction == key.DirRelease {
		return false
	}
	if _, ok := w.ed.PendingText(); ok && e.Modifiers&key.ModControl == 0 {
		switch e.Code {
		case key.CodeReturnEnter:
			return w.ed.FinalizeText()
		case key.CodeEscape:
			return w.ed.CancelText()
		case key.CodeDeleteBackspace:
			return w.ed.TextBackspace()
		}
		if e.Rune > 0 && unicode.IsPrint(e.Rune) {
			return w.ed.TextInput(e.Rune)
		}
		return false
	}
	if e.Direction != key.DirPress {
		return false
	}
	a, ok := w.shortcuts[shortcutOf(e)]
	if !ok {
		return false
	}
	a.run(w)
	return true
}

// promptAnswer reads a yes/no answer from a key press.
func promptAnswer(e interface{}) (answer, ok bool) {
	k, isKey := e.(key.Event)
	if !isKey || k.Direction != key.DirPress {
		return false, false
	}
	switch {
	case unicode.ToLower(k.Rune) == 'y', k.Code == key.CodeReturnEnter:
		return true, true
	case unicode.ToLower(k.Rune) == 'n', k.Code == key.CodeEscape:
		return false, true
	}
	return false, false
}
