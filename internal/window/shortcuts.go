package window

import (
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/easel/internal/editor"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// shortcutOf normalises a key event for lookup.
func shortcutOf(e key.Event) KeyShortcut {
	mods := e.Modifiers & (key.ModControl | key.ModShift)
	if e.Rune > 0 && unicode.IsPrint(e.Rune) {
		if !unicode.IsLetter(e.Rune) {
			// shift is how most layouts reach punctuation
			mods &^= key.ModShift
		}
		return KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: mods}
	}
	if e.Code >= key.CodeA && e.Code <= key.CodeZ {
		// some drivers report control characters instead of letters
		return KeyShortcut{Rune: 'a' + rune(e.Code-key.CodeA), Modifiers: mods}
	}
	return KeyShortcut{Code: e.Code, Modifiers: mods}
}

type action struct {
	name string
	run  func(w *Window)
}

func ctrl(r rune) KeyShortcut      { return KeyShortcut{Rune: r, Modifiers: key.ModControl} }
func ctrlShift(r rune) KeyShortcut { return KeyShortcut{Rune: r, Modifiers: key.ModControl | key.ModShift} }
func plain(r rune) KeyShortcut     { return KeyShortcut{Rune: r} }
func shifted(r rune) KeyShortcut   { return KeyShortcut{Rune: r, Modifiers: key.ModShift} }
func code(c key.Code) KeyShortcut  { return KeyShortcut{Code: c} }

func useTool(t editor.Tool) func(*Window) {
	return func(w *Window) { w.ed.SetTool(t) }
}

// defaultShortcuts maps keys to window actions.
func defaultShortcuts() map[KeyShortcut]action {
	m := map[KeyShortcut]action{
		ctrl('c'):      {"copy", (*Window).copy},
		ctrl('x'):      {"cut", func(w *Window) { w.ed.Cut() }},
		ctrl('v'):      {"paste", func(w *Window) { w.ed.Paste() }},
		ctrl('z'):      {"undo", func(w *Window) { w.ed.Undo() }},
		ctrl('y'):      {"redo", func(w *Window) { w.ed.Redo() }},
		ctrlShift('z'): {"redo", func(w *Window) { w.ed.Redo() }},
		ctrl('s'):      {"save", (*Window).save},
		ctrl('a'):      {"select all", func(w *Window) { w.ed.SelectAll() }},
		ctrl('q'):      {"quit", func(w *Window) { w.closed = true }},

		code(key.CodeEscape):        {"cancel", func(w *Window) { w.ed.Cancel() }},
		code(key.CodeReturnEnter):   {"commit", func(w *Window) { w.ed.Commit(true) }},
		code(key.CodeDeleteForward): {"erase", func(w *Window) { w.ed.Erase() }},

		plain('r'):   {"rotate clockwise", func(w *Window) { w.ed.RotateCW() }},
		shifted('r'): {"rotate anticlockwise", func(w *Window) { w.ed.RotateCCW() }},
		plain('h'):   {"flip horizontal", func(w *Window) { w.ed.FlipHorizontal() }},
		plain('v'):   {"flip vertical", func(w *Window) { w.ed.FlipVertical() }},

		plain('+'): {"zoom in", func(w *Window) { w.zoomBy(1.25) }},
		plain('='): {"zoom in", func(w *Window) { w.zoomBy(1.25) }},
		plain('-'): {"zoom out", func(w *Window) { w.zoomBy(1 / 1.25) }},
		plain('0'): {"fit", func(w *Window) { w.zoom = 0 }},
	}
	letters := map[string]rune{
		"select": 's', "lasso": 'a', "pencil": 'p', "eraser": 'e', "line": 'l',
		"rectangle": 'x', "ellipse": 'o', "fill": 'f', "eyedropper": 'i', "text": 't',
	}
	for _, t := range editor.Tools() {
		if r, ok := letters[t.Name()]; ok {
			m[plain(r)] = action{t.Name(), useTool(t)}
		}
	}
	return m
}
